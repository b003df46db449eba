package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// AccountUseCase manages account lifecycle. Balance mutations never happen
// here; they flow exclusively through the ledger's ApplyDelta.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo, idGen: idGen}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name           string
	Type           domain.AccountType
	InitialBalance decimal.Decimal
	Color          string
}

// CreateAccount creates a new account with an opening balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, userID string, input CreateAccountInput) (*domain.Account, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidType
	}
	if err := domain.ValidateDescription(input.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		Balance:   input.InitialBalance,
		Color:     input.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id, userID string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id, userID)
}

// ListAccounts lists all accounts for a user.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, userID string) ([]*domain.Account, error) {
	return uc.accountRepo.ListByUser(ctx, userID)
}

// UpdateAccountInput represents a partial account update. The balance is
// deliberately absent: it only moves through ledger operations.
type UpdateAccountInput struct {
	Name  *string
	Type  *domain.AccountType
	Color *string
}

// UpdateAccount edits an account's descriptive fields.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id, userID string, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateDescription(*input.Name); err != nil {
			return nil, err
		}
		account.Name = *input.Name
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, domain.ErrInvalidType
		}
		account.Type = *input.Type
	}
	if input.Color != nil {
		account.Color = *input.Color
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes an account.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id, userID string) error {
	return uc.accountRepo.Delete(ctx, id, userID)
}
