package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, user_id, name, type, balance, color, created_at, updated_at`

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.Name,
		string(account.Type),
		decimalToNumeric(account.Balance),
		account.Color,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetByID retrieves an account by ID, scoped to its owner.
func (r *AccountRepository) GetByID(ctx context.Context, id, userID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND user_id = $2`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// ListByUser lists a user's accounts.
func (r *AccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// Update updates an account's descriptive fields.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $3, type = $4, color = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.Name,
		string(account.Type),
		account.Color,
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account.
func (r *AccountRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// ApplyDelta atomically adds a signed amount to the balance inside the unit
// of work. The row lock taken by the UPDATE serializes concurrent deltas on
// the same account.
func (r *AccountRepository) ApplyDelta(ctx context.Context, uow usecase.UnitOfWork, accountID string, delta decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = balance + $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := uowTx(uow).Exec(ctx, query, accountID, decimalToNumeric(delta))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account   domain.Account
		accType   string
		balance   pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&accType,
		&balance,
		&account.Color,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Type = domain.AccountType(accType)
	account.Balance = numericToDecimal(balance)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}
