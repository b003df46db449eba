package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// Default descriptions for transfer audit legs.
const (
	transferSentDescription     = "Transfer sent"
	transferReceivedDescription = "Transfer received"
)

// LedgerUseCase orchestrates transaction mutations. Every public operation
// runs inside exactly one unit of work; balance and invoice effects always
// commit or roll back together with the row they belong to.
type LedgerUseCase struct {
	txManager   TxManager
	txRepo      TransactionRepository
	accountRepo AccountRepository
	cardRepo    CardRepository
	invoiceRepo InvoiceRepository
	idGen       IDGenerator
	effects     ledgerEffects
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TxManager,
	txRepo TransactionRepository,
	accountRepo AccountRepository,
	cardRepo CardRepository,
	invoiceRepo InvoiceRepository,
	idGen IDGenerator,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		txRepo:      txRepo,
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		invoiceRepo: invoiceRepo,
		idGen:       idGen,
		effects: ledgerEffects{
			accountRepo: accountRepo,
			invoiceRepo: invoiceRepo,
			cardRepo:    cardRepo,
		},
	}
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	Description     string
	Amount          decimal.Decimal
	Type            domain.TxType
	Date            time.Time
	CategoryID      *string
	AccountID       *string
	CreditCardID    *string
	Recurring       bool
	Recurrence      *domain.Cadence
	RecurrenceCount *int
	Installments    *int
}

func (in *CreateTransactionInput) validate() error {
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return domain.ErrInvalidType
	}
	if err := domain.ValidateDescription(in.Description); err != nil {
		return err
	}
	if in.Type == domain.TxIncome && in.CreditCardID != nil {
		return domain.ErrCardRequiresExpense
	}
	if in.CreditCardID != nil && in.AccountID != nil {
		return domain.ErrDoubleAttribution
	}
	if in.CreditCardID == nil && in.AccountID == nil {
		return domain.ErrMissingAttribution
	}
	if in.Recurring && (in.Recurrence == nil || !in.Recurrence.Valid()) {
		return domain.ErrInvalidRecurrence
	}
	if in.Installments != nil && *in.Installments < 1 {
		return domain.ErrInvalidInstallments
	}
	return nil
}

// CreateTransaction persists a new transaction and applies its financial
// effect in one unit of work. Card expenses accrue into invoice buckets
// (spread across installments), account rows move the balance, and a
// recurring request becomes an active definition with its first due date
// already advanced past the creation date.
func (uc *LedgerUseCase) CreateTransaction(ctx context.Context, userID string, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	tx := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		UserID:      userID,
		AccountID:   input.AccountID,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        input.Date,
		Recurring:   input.Recurring,
		CreatedAt:   now,
	}

	if input.CreditCardID != nil {
		tx.CreditCardID = input.CreditCardID
		tx.AccountID = nil
		tx.Installments = input.Installments
		if input.Installments != nil {
			first := 1
			tx.InstallmentCurrent = &first
		}
	}

	if input.Recurring {
		next := input.Recurrence.Advance(input.Date)
		tx.Recurrence = input.Recurrence
		tx.NextDueDate = &next
		tx.RecurrenceCount = input.RecurrenceCount
		tx.RecurrenceCurrent = 1
	}

	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	if err := uc.txRepo.Create(ctx, uow, tx); err != nil {
		return nil, err
	}

	if err := uc.effects.apply(ctx, uow, tx); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tx, nil
}

// UpdateTransactionInput represents a partial update. Nil fields are left
// unchanged. Setting AccountID moves the transaction onto that account and
// off any card; setting CreditCardID does the opposite.
type UpdateTransactionInput struct {
	Description  *string
	Amount       *decimal.Decimal
	Type         *domain.TxType
	CategoryID   *string
	Date         *time.Time
	AccountID    *string
	CreditCardID *string
	Installments *int
	Recurring    *bool
	Recurrence   *domain.Cadence
	NextDueDate  *time.Time
}

// UpdateTransaction edits a transaction. The stored financial effect is
// always reversed first, using the row's persisted fields, and the new
// effect is applied from the merged result; no money-bearing field is ever
// patched in place.
func (uc *LedgerUseCase) UpdateTransaction(ctx context.Context, id, userID string, patch UpdateTransactionInput) (*domain.Transaction, error) {
	if patch.AccountID != nil && patch.CreditCardID != nil {
		return nil, domain.ErrDoubleAttribution
	}

	stored, err := uc.txRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	merged := *stored
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Amount != nil {
		merged.Amount = *patch.Amount
	}
	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	if patch.CategoryID != nil {
		merged.CategoryID = patch.CategoryID
	}
	if patch.Date != nil {
		merged.Date = *patch.Date
	}
	if patch.Installments != nil {
		merged.Installments = patch.Installments
	}
	if patch.AccountID != nil {
		merged.AccountID = patch.AccountID
		merged.CreditCardID = nil
		merged.Installments = nil
		merged.InstallmentCurrent = nil
	}
	if patch.CreditCardID != nil {
		merged.CreditCardID = patch.CreditCardID
		merged.AccountID = nil
	}
	if patch.Recurring != nil {
		merged.Recurring = *patch.Recurring
	}
	if patch.Recurrence != nil {
		merged.Recurrence = patch.Recurrence
	}
	if patch.NextDueDate != nil {
		merged.NextDueDate = patch.NextDueDate
	}

	if err := domain.ValidateAmount(merged.Amount); err != nil {
		return nil, err
	}
	if !merged.Type.Valid() {
		return nil, domain.ErrInvalidType
	}
	if merged.Type == domain.TxIncome && merged.CreditCardID != nil {
		return nil, domain.ErrCardRequiresExpense
	}
	if merged.Installments != nil && *merged.Installments < 1 {
		return nil, domain.ErrInvalidInstallments
	}
	if merged.Recurrence != nil && !merged.Recurrence.Valid() {
		return nil, domain.ErrInvalidRecurrence
	}

	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	if err := uc.effects.reverse(ctx, uow, stored); err != nil {
		return nil, err
	}

	if err := uc.effects.apply(ctx, uow, &merged); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Update(ctx, uow, &merged); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &merged, nil
}

// DeleteTransaction removes a transaction and reverses its stored
// financial effect in one unit of work.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, id, userID string) error {
	stored, err := uc.txRepo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	if err := uc.txRepo.Delete(ctx, uow, id, userID); err != nil {
		return err
	}

	if err := uc.effects.reverse(ctx, uow, stored); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// TransferInput represents input for a transfer between accounts.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Description   string
}

// Transfer atomically debits one account, credits another, and records two
// category-less audit legs. No minimum-balance check is made here; an
// account can be driven negative by a transfer.
func (uc *LedgerUseCase) Transfer(ctx context.Context, userID string, input TransferInput) error {
	if input.FromAccountID == input.ToAccountID {
		return domain.ErrSameAccount
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	sentDescription := input.Description
	receivedDescription := input.Description
	if input.Description == "" {
		sentDescription = transferSentDescription
		receivedDescription = transferReceivedDescription
	}

	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	if err := uc.accountRepo.ApplyDelta(ctx, uow, input.FromAccountID, input.Amount.Neg()); err != nil {
		return err
	}
	if err := uc.accountRepo.ApplyDelta(ctx, uow, input.ToAccountID, input.Amount); err != nil {
		return err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	legs := []*domain.Transaction{
		{
			ID:          uc.idGen.Generate(),
			UserID:      userID,
			AccountID:   &input.FromAccountID,
			Description: sentDescription,
			Amount:      input.Amount,
			Type:        domain.TxExpense,
			Date:        today,
			CreatedAt:   now,
		},
		{
			ID:          uc.idGen.Generate(),
			UserID:      userID,
			AccountID:   &input.ToAccountID,
			Description: receivedDescription,
			Amount:      input.Amount,
			Type:        domain.TxIncome,
			Date:        today,
			CreatedAt:   now,
		},
	}

	for _, leg := range legs {
		if err := uc.txRepo.Create(ctx, uow, leg); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// GetTransaction retrieves a transaction by ID.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, id, userID string) (*domain.Transaction, error) {
	return uc.txRepo.GetByID(ctx, id, userID)
}

// ListTransactions lists a page of the user's transactions, newest first.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.txRepo.ListByUser(ctx, userID, limit, offset)
}
