package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// GoalUseCase manages saving goals.
type GoalUseCase struct {
	goalRepo GoalRepository
	idGen    IDGenerator
}

// NewGoalUseCase creates a new GoalUseCase.
func NewGoalUseCase(goalRepo GoalRepository, idGen IDGenerator) *GoalUseCase {
	return &GoalUseCase{goalRepo: goalRepo, idGen: idGen}
}

// CreateGoalInput represents input for creating a goal.
type CreateGoalInput struct {
	Name     string
	Target   decimal.Decimal
	Deadline *time.Time
	Color    string
}

// CreateGoal creates a new saving goal.
func (uc *GoalUseCase) CreateGoal(ctx context.Context, userID string, input CreateGoalInput) (*domain.Goal, error) {
	if err := domain.ValidateDescription(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Target); err != nil {
		return nil, err
	}

	goal := &domain.Goal{
		ID:            uc.idGen.Generate(),
		UserID:        userID,
		Name:          input.Name,
		Target:        input.Target,
		CurrentAmount: decimal.Zero,
		Deadline:      input.Deadline,
		Color:         input.Color,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// ListGoals lists all goals for a user.
func (uc *GoalUseCase) ListGoals(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return uc.goalRepo.ListByUser(ctx, userID)
}

// UpdateGoalInput represents a partial goal update.
type UpdateGoalInput struct {
	Name          *string
	Target        *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	Color         *string
}

// UpdateGoal edits a goal, including manual progress adjustments.
func (uc *GoalUseCase) UpdateGoal(ctx context.Context, id, userID string, input UpdateGoalInput) (*domain.Goal, error) {
	goal, err := uc.goalRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateDescription(*input.Name); err != nil {
			return nil, err
		}
		goal.Name = *input.Name
	}
	if input.Target != nil {
		if err := domain.ValidateAmount(*input.Target); err != nil {
			return nil, err
		}
		goal.Target = *input.Target
	}
	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}
	if input.Color != nil {
		goal.Color = *input.Color
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes a goal.
func (uc *GoalUseCase) DeleteGoal(ctx context.Context, id, userID string) error {
	return uc.goalRepo.Delete(ctx, id, userID)
}
