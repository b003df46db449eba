package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, user_id, account_id, category_id, credit_card_id,
	description, amount, type, date,
	recurring, recurrence, next_due_date, recurrence_count, recurrence_current,
	recurrence_group_id, recurrence_paused,
	installments, installment_current, created_at`

// Create inserts a transaction row inside the unit of work.
func (r *TransactionRepository) Create(ctx context.Context, uow usecase.UnitOfWork, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	var recurrence *string
	if tx.Recurrence != nil {
		s := string(*tx.Recurrence)
		recurrence = &s
	}

	_, err := uowTx(uow).Exec(ctx, query,
		tx.ID,
		tx.UserID,
		tx.AccountID,
		tx.CategoryID,
		tx.CreditCardID,
		tx.Description,
		decimalToNumeric(tx.Amount),
		string(tx.Type),
		timeToPgTimestamptz(tx.Date),
		tx.Recurring,
		recurrence,
		ptrToPgTimestamptz(tx.NextDueDate),
		tx.RecurrenceCount,
		tx.RecurrenceCurrent,
		tx.RecurrenceGroupID,
		tx.RecurrencePaused,
		tx.Installments,
		tx.InstallmentCurrent,
		timeToPgTimestamptz(tx.CreatedAt),
	)

	return err
}

// GetByID retrieves a transaction by ID, scoped to its owner.
func (r *TransactionRepository) GetByID(ctx context.Context, id, userID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`

	tx, err := scanTransaction(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return tx, nil
}

// ListByUser lists a user's transactions, newest date first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`

	return r.queryTransactions(ctx, query, userID, limit, offset)
}

// ListByGroup lists the materialized occurrences of a recurring definition.
func (r *TransactionRepository) ListByGroup(ctx context.Context, groupID, userID string) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE recurrence_group_id = $1 AND user_id = $2 ORDER BY date`

	return r.queryTransactions(ctx, query, groupID, userID)
}

// ListDueRecurring selects active recurring definitions due on or before
// today. Paused definitions never come back from this query.
func (r *TransactionRepository) ListDueRecurring(ctx context.Context, today time.Time) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE recurring = TRUE
		  AND recurrence_paused = FALSE
		  AND next_due_date IS NOT NULL
		  AND next_due_date <= $1
		ORDER BY next_due_date`

	return r.queryTransactions(ctx, query, timeToPgTimestamptz(today))
}

// Update rewrites the full transaction row inside the unit of work.
func (r *TransactionRepository) Update(ctx context.Context, uow usecase.UnitOfWork, tx *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $3, category_id = $4, credit_card_id = $5,
		    description = $6, amount = $7, type = $8, date = $9,
		    recurring = $10, recurrence = $11, next_due_date = $12,
		    recurrence_count = $13, recurrence_current = $14,
		    recurrence_paused = $15, installments = $16, installment_current = $17
		WHERE id = $1 AND user_id = $2
	`

	var recurrence *string
	if tx.Recurrence != nil {
		s := string(*tx.Recurrence)
		recurrence = &s
	}

	tag, err := uowTx(uow).Exec(ctx, query,
		tx.ID,
		tx.UserID,
		tx.AccountID,
		tx.CategoryID,
		tx.CreditCardID,
		tx.Description,
		decimalToNumeric(tx.Amount),
		string(tx.Type),
		timeToPgTimestamptz(tx.Date),
		tx.Recurring,
		recurrence,
		ptrToPgTimestamptz(tx.NextDueDate),
		tx.RecurrenceCount,
		tx.RecurrenceCurrent,
		tx.RecurrencePaused,
		tx.Installments,
		tx.InstallmentCurrent,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a transaction inside the unit of work.
func (r *TransactionRepository) Delete(ctx context.Context, uow usecase.UnitOfWork, id, userID string) error {
	tag, err := uowTx(uow).Exec(ctx,
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// DeleteByGroup removes every occurrence of a recurring definition and
// returns the deleted rows so their effects can be reversed.
func (r *TransactionRepository) DeleteByGroup(ctx context.Context, uow usecase.UnitOfWork, groupID, userID string) ([]*domain.Transaction, error) {
	query := `
		DELETE FROM transactions
		WHERE recurrence_group_id = $1 AND user_id = $2
		RETURNING ` + transactionColumns

	rows, err := uowTx(uow).Query(ctx, query, groupID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deleted []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		deleted = append(deleted, tx)
	}

	return deleted, rows.Err()
}

// UpdateRecurrence advances a definition's schedule state in place.
func (r *TransactionRepository) UpdateRecurrence(ctx context.Context, uow usecase.UnitOfWork, id string, nextDueDate *time.Time, current int, recurring bool) error {
	query := `
		UPDATE transactions
		SET next_due_date = $2, recurrence_current = $3, recurring = $4
		WHERE id = $1
	`

	tag, err := uowTx(uow).Exec(ctx, query,
		id, ptrToPgTimestamptz(nextDueDate), current, recurring)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// SetPaused flips the paused flag and returns the updated row.
func (r *TransactionRepository) SetPaused(ctx context.Context, id, userID string, paused bool) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET recurrence_paused = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + transactionColumns

	tx, err := scanTransaction(r.pool.QueryRow(ctx, query, id, userID, paused))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return tx, nil
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx          domain.Transaction
		amount      pgtype.Numeric
		txType      string
		date        pgtype.Timestamptz
		recurrence  *string
		nextDueDate pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.AccountID,
		&tx.CategoryID,
		&tx.CreditCardID,
		&tx.Description,
		&amount,
		&txType,
		&date,
		&tx.Recurring,
		&recurrence,
		&nextDueDate,
		&tx.RecurrenceCount,
		&tx.RecurrenceCurrent,
		&tx.RecurrenceGroupID,
		&tx.RecurrencePaused,
		&tx.Installments,
		&tx.InstallmentCurrent,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Amount = numericToDecimal(amount)
	tx.Type = domain.TxType(txType)
	tx.Date = date.Time
	if recurrence != nil {
		c := domain.Cadence(*recurrence)
		tx.Recurrence = &c
	}
	tx.NextDueDate = pgTimestamptzToPtr(nextDueDate)
	tx.CreatedAt = createdAt.Time

	return &tx, nil
}
