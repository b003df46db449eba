package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// CardUseCase manages credit cards, their invoices and invoice payment.
type CardUseCase struct {
	txManager   TxManager
	cardRepo    CardRepository
	invoiceRepo InvoiceRepository
	accountRepo AccountRepository
	idGen       IDGenerator
}

// NewCardUseCase creates a new CardUseCase.
func NewCardUseCase(
	txManager TxManager,
	cardRepo CardRepository,
	invoiceRepo InvoiceRepository,
	accountRepo AccountRepository,
	idGen IDGenerator,
) *CardUseCase {
	return &CardUseCase{
		txManager:   txManager,
		cardRepo:    cardRepo,
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		idGen:       idGen,
	}
}

// CreateCardInput represents input for creating a credit card.
type CreateCardInput struct {
	Name       string
	Limit      decimal.Decimal
	ClosingDay int
	DueDay     int
	Color      string
}

func (in *CreateCardInput) validate() error {
	if err := domain.ValidateDescription(in.Name); err != nil {
		return err
	}
	if in.Limit.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if in.ClosingDay < 1 || in.ClosingDay > 31 || in.DueDay < 1 || in.DueDay > 31 {
		return domain.ErrInvalidDay
	}
	return nil
}

// CreateCard creates a new credit card.
func (uc *CardUseCase) CreateCard(ctx context.Context, userID string, input CreateCardInput) (*domain.CreditCard, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	card := &domain.CreditCard{
		ID:         uc.idGen.Generate(),
		UserID:     userID,
		Name:       input.Name,
		Limit:      input.Limit,
		ClosingDay: input.ClosingDay,
		DueDay:     input.DueDay,
		Color:      input.Color,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// CardWithUsage pairs a card with its open-invoice usage.
type CardWithUsage struct {
	Card      *domain.CreditCard
	Used      decimal.Decimal
	Available decimal.Decimal
}

// ListCards lists a user's cards with used amount (sum of unpaid invoice
// totals) and remaining limit.
func (uc *CardUseCase) ListCards(ctx context.Context, userID string) ([]*CardWithUsage, error) {
	cards, err := uc.cardRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*CardWithUsage, 0, len(cards))
	for _, card := range cards {
		used, err := uc.invoiceRepo.UsedAmount(ctx, card.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &CardWithUsage{
			Card:      card,
			Used:      used,
			Available: card.Limit.Sub(used),
		})
	}
	return out, nil
}

// GetCard retrieves a credit card by ID.
func (uc *CardUseCase) GetCard(ctx context.Context, id, userID string) (*domain.CreditCard, error) {
	return uc.cardRepo.GetByID(ctx, id, userID)
}

// UpdateCardInput represents a partial card update.
type UpdateCardInput struct {
	Name       *string
	Limit      *decimal.Decimal
	ClosingDay *int
	DueDay     *int
	Color      *string
}

// UpdateCard edits a card. Changing the closing day only affects buckets
// chosen for future purchases; existing invoices are left untouched.
func (uc *CardUseCase) UpdateCard(ctx context.Context, id, userID string, input UpdateCardInput) (*domain.CreditCard, error) {
	card, err := uc.cardRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		card.Name = *input.Name
	}
	if input.Limit != nil {
		if input.Limit.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		card.Limit = *input.Limit
	}
	if input.ClosingDay != nil {
		if *input.ClosingDay < 1 || *input.ClosingDay > 31 {
			return nil, domain.ErrInvalidDay
		}
		card.ClosingDay = *input.ClosingDay
	}
	if input.DueDay != nil {
		if *input.DueDay < 1 || *input.DueDay > 31 {
			return nil, domain.ErrInvalidDay
		}
		card.DueDay = *input.DueDay
	}
	if input.Color != nil {
		card.Color = *input.Color
	}
	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteCard removes a credit card.
func (uc *CardUseCase) DeleteCard(ctx context.Context, id, userID string) error {
	return uc.cardRepo.Delete(ctx, id, userID)
}

// ListInvoices lists a card's invoices, newest reference month first.
func (uc *CardUseCase) ListInvoices(ctx context.Context, cardID, userID string) ([]*domain.Invoice, error) {
	if _, err := uc.cardRepo.GetByID(ctx, cardID, userID); err != nil {
		return nil, err
	}
	return uc.invoiceRepo.ListByCard(ctx, cardID, userID)
}

// PayInvoice settles an invoice from an account: the invoice row is locked,
// a second payment is rejected, the paying account is debited by the full
// total and the invoice is marked paid, all in one unit of work.
func (uc *CardUseCase) PayInvoice(ctx context.Context, invoiceID, userID, accountID string) (*domain.Invoice, error) {
	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, uow, invoiceID, userID)
	if err != nil {
		return nil, err
	}
	if invoice.Paid {
		return nil, domain.ErrInvoiceAlreadyPaid
	}

	if err := uc.accountRepo.ApplyDelta(ctx, uow, accountID, invoice.Total.Neg()); err != nil {
		return nil, err
	}

	paidAt := time.Now().UTC()
	paid, err := uc.invoiceRepo.MarkPaid(ctx, uow, invoiceID, userID, accountID, paidAt)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return paid, nil
}
