package usecase

import (
	"context"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// ledgerEffects applies and reverses the financial effect of a transaction
// row. Update and delete both route through it, so the
// reverse-then-reapply invariant lives in one place instead of being
// re-derived at every call site.
type ledgerEffects struct {
	accountRepo AccountRepository
	invoiceRepo InvoiceRepository
	cardRepo    CardRepository
}

// apply adds the transaction's financial effect: a signed balance delta for
// account rows, or invoice accrual spread over installment buckets for card
// rows. A row with neither attribution has no financial effect; the guard
// keeps apply/reverse total over any stored row.
func (e *ledgerEffects) apply(ctx context.Context, uow UnitOfWork, tx *domain.Transaction) error {
	if tx.CreditCardID != nil {
		return e.accrueInvoices(ctx, uow, tx)
	}
	if tx.AccountID != nil {
		return e.accountRepo.ApplyDelta(ctx, uow, *tx.AccountID, tx.SignedAmount())
	}
	return nil
}

// reverse undoes the transaction's financial effect, recomputed purely from
// the row's stored fields.
func (e *ledgerEffects) reverse(ctx context.Context, uow UnitOfWork, tx *domain.Transaction) error {
	if tx.CreditCardID != nil {
		return e.subtractInvoices(ctx, uow, tx)
	}
	if tx.AccountID != nil {
		return e.accountRepo.ApplyDelta(ctx, uow, *tx.AccountID, tx.SignedAmount().Neg())
	}
	return nil
}

// accrueInvoices spreads the amount across consecutive monthly buckets, one
// per installment, starting at the bucket the transaction date falls into.
func (e *ledgerEffects) accrueInvoices(ctx context.Context, uow UnitOfWork, tx *domain.Transaction) error {
	card, err := e.cardRepo.GetByID(ctx, *tx.CreditCardID, tx.UserID)
	if err != nil {
		return err
	}

	count := tx.InstallmentCount()
	share := domain.InstallmentShare(tx.Amount, count)
	for i := 0; i < count; i++ {
		month := domain.InvoiceMonth(tx.Date.AddDate(0, i, 0), card.ClosingDay)
		if err := e.invoiceRepo.Accrue(ctx, uow, card.ID, tx.UserID, month, share); err != nil {
			return err
		}
	}

	return nil
}

// subtractInvoices recomputes the buckets the row accrued into and removes
// the per-installment share from each, clamped at zero. It consults nothing
// but the row's own stored date, amount and installment count.
func (e *ledgerEffects) subtractInvoices(ctx context.Context, uow UnitOfWork, tx *domain.Transaction) error {
	card, err := e.cardRepo.GetByID(ctx, *tx.CreditCardID, tx.UserID)
	if err != nil {
		return err
	}

	count := tx.InstallmentCount()
	share := domain.InstallmentShare(tx.Amount, count)
	for i := 0; i < count; i++ {
		month := domain.InvoiceMonth(tx.Date.AddDate(0, i, 0), card.ClosingDay)
		if err := e.invoiceRepo.Subtract(ctx, uow, card.ID, month, share); err != nil {
			return err
		}
	}

	return nil
}
