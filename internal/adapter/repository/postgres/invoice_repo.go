package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// InvoiceRepository implements usecase.InvoiceRepository. Buckets are
// unique per (credit_card_id, reference_month); accrual relies on that
// constraint for its upsert.
type InvoiceRepository struct {
	pool *pgxpool.Pool
	gen  usecase.IDGenerator
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool, gen usecase.IDGenerator) *InvoiceRepository {
	return &InvoiceRepository{pool: pool, gen: gen}
}

const invoiceColumns = `id, credit_card_id, user_id, reference_month, total, paid, paid_at, paid_with_account_id, created_at`

// Accrue adds amount to the (card, month) bucket, creating the bucket on
// first use.
func (r *InvoiceRepository) Accrue(ctx context.Context, uow usecase.UnitOfWork, cardID, userID, month string, amount decimal.Decimal) error {
	query := `
		INSERT INTO credit_card_invoices (id, credit_card_id, user_id, reference_month, total, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, now())
		ON CONFLICT (credit_card_id, reference_month)
		DO UPDATE SET total = credit_card_invoices.total + EXCLUDED.total
	`

	_, err := uowTx(uow).Exec(ctx, query,
		r.gen.Generate(), cardID, userID, month, decimalToNumeric(amount))

	return err
}

// Subtract removes amount from the bucket's total, clamped at zero. A
// missing bucket is not an error; there is nothing to reverse.
func (r *InvoiceRepository) Subtract(ctx context.Context, uow usecase.UnitOfWork, cardID, month string, amount decimal.Decimal) error {
	query := `
		UPDATE credit_card_invoices
		SET total = GREATEST(0, total - $3)
		WHERE credit_card_id = $1 AND reference_month = $2
	`

	_, err := uowTx(uow).Exec(ctx, query, cardID, month, decimalToNumeric(amount))

	return err
}

// GetByIDForUpdate locks and retrieves an invoice inside the unit of work.
func (r *InvoiceRepository) GetByIDForUpdate(ctx context.Context, uow usecase.UnitOfWork, id, userID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM credit_card_invoices
		WHERE id = $1 AND user_id = $2 FOR UPDATE`

	invoice, err := scanInvoice(uowTx(uow).QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return invoice, nil
}

// ListByCard lists a card's invoices, newest reference month first.
func (r *InvoiceRepository) ListByCard(ctx context.Context, cardID, userID string) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM credit_card_invoices
		WHERE credit_card_id = $1 AND user_id = $2 ORDER BY reference_month DESC`

	rows, err := r.pool.Query(ctx, query, cardID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}

// MarkPaid marks an invoice paid inside the unit of work.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, uow usecase.UnitOfWork, id, userID, accountID string, paidAt time.Time) (*domain.Invoice, error) {
	query := `
		UPDATE credit_card_invoices
		SET paid = TRUE, paid_at = $3, paid_with_account_id = $4
		WHERE id = $1 AND user_id = $2
		RETURNING ` + invoiceColumns

	invoice, err := scanInvoice(uowTx(uow).QueryRow(ctx, query,
		id, userID, timeToPgTimestamptz(paidAt), accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return invoice, nil
}

// UsedAmount sums the totals of a card's unpaid invoices.
func (r *InvoiceRepository) UsedAmount(ctx context.Context, cardID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM credit_card_invoices
		WHERE credit_card_id = $1 AND paid = FALSE
	`

	var used pgtype.Numeric
	if err := r.pool.QueryRow(ctx, query, cardID).Scan(&used); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(used), nil
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		invoice   domain.Invoice
		total     pgtype.Numeric
		paidAt    pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&invoice.ID,
		&invoice.CreditCardID,
		&invoice.UserID,
		&invoice.ReferenceMonth,
		&total,
		&invoice.Paid,
		&paidAt,
		&invoice.PaidWithAccountID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	invoice.Total = numericToDecimal(total)
	invoice.PaidAt = pgTimestamptzToPtr(paidAt)
	invoice.CreatedAt = createdAt.Time

	return &invoice, nil
}
