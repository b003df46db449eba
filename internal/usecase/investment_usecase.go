package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// InvestmentUseCase manages investment positions.
type InvestmentUseCase struct {
	investmentRepo InvestmentRepository
	idGen          IDGenerator
}

// NewInvestmentUseCase creates a new InvestmentUseCase.
func NewInvestmentUseCase(investmentRepo InvestmentRepository, idGen IDGenerator) *InvestmentUseCase {
	return &InvestmentUseCase{investmentRepo: investmentRepo, idGen: idGen}
}

// CreateInvestmentInput represents input for creating an investment.
type CreateInvestmentInput struct {
	Name         string
	Type         string
	Principal    decimal.Decimal
	CurrentValue decimal.Decimal
	ReturnRate   decimal.Decimal
	StartDate    time.Time
}

// CreateInvestment creates a new investment position.
func (uc *InvestmentUseCase) CreateInvestment(ctx context.Context, userID string, input CreateInvestmentInput) (*domain.Investment, error) {
	if err := domain.ValidateDescription(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Principal); err != nil {
		return nil, err
	}
	if input.CurrentValue.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	investment := &domain.Investment{
		ID:           uc.idGen.Generate(),
		UserID:       userID,
		Name:         input.Name,
		Type:         input.Type,
		Principal:    input.Principal,
		CurrentValue: input.CurrentValue,
		ReturnRate:   input.ReturnRate,
		StartDate:    input.StartDate,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, err
	}
	return investment, nil
}

// ListInvestments lists all investments for a user.
func (uc *InvestmentUseCase) ListInvestments(ctx context.Context, userID string) ([]*domain.Investment, error) {
	return uc.investmentRepo.ListByUser(ctx, userID)
}

// UpdateInvestmentInput represents a partial investment update.
type UpdateInvestmentInput struct {
	Name         *string
	Type         *string
	Principal    *decimal.Decimal
	CurrentValue *decimal.Decimal
	ReturnRate   *decimal.Decimal
	StartDate    *time.Time
}

// UpdateInvestment edits an investment, including revaluations.
func (uc *InvestmentUseCase) UpdateInvestment(ctx context.Context, id, userID string, input UpdateInvestmentInput) (*domain.Investment, error) {
	investment, err := uc.investmentRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateDescription(*input.Name); err != nil {
			return nil, err
		}
		investment.Name = *input.Name
	}
	if input.Type != nil {
		investment.Type = *input.Type
	}
	if input.Principal != nil {
		if err := domain.ValidateAmount(*input.Principal); err != nil {
			return nil, err
		}
		investment.Principal = *input.Principal
	}
	if input.CurrentValue != nil {
		if input.CurrentValue.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		investment.CurrentValue = *input.CurrentValue
	}
	if input.ReturnRate != nil {
		investment.ReturnRate = *input.ReturnRate
	}
	if input.StartDate != nil {
		investment.StartDate = *input.StartDate
	}

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, err
	}
	return investment, nil
}

// DeleteInvestment removes an investment.
func (uc *InvestmentUseCase) DeleteInvestment(ctx context.Context, id, userID string) error {
	return uc.investmentRepo.Delete(ctx, id, userID)
}
