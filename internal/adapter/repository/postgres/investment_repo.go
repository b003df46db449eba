package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// InvestmentRepository implements usecase.InvestmentRepository.
type InvestmentRepository struct {
	pool *pgxpool.Pool
}

// NewInvestmentRepository creates a new InvestmentRepository.
func NewInvestmentRepository(pool *pgxpool.Pool) *InvestmentRepository {
	return &InvestmentRepository{pool: pool}
}

const investmentColumns = `id, user_id, name, type, principal, current_value, return_rate, start_date, created_at`

// Create creates a new investment.
func (r *InvestmentRepository) Create(ctx context.Context, investment *domain.Investment) error {
	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		investment.ID,
		investment.UserID,
		investment.Name,
		investment.Type,
		decimalToNumeric(investment.Principal),
		decimalToNumeric(investment.CurrentValue),
		decimalToNumeric(investment.ReturnRate),
		timeToPgTimestamptz(investment.StartDate),
		timeToPgTimestamptz(investment.CreatedAt),
	)

	return err
}

// GetByID retrieves an investment by ID, scoped to its owner.
func (r *InvestmentRepository) GetByID(ctx context.Context, id, userID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE id = $1 AND user_id = $2`

	investment, err := scanInvestment(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvestmentNotFound
		}

		return nil, err
	}

	return investment, nil
}

// ListByUser lists a user's investments.
func (r *InvestmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var investments []*domain.Investment
	for rows.Next() {
		investment, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, investment)
	}

	return investments, rows.Err()
}

// Update updates an investment.
func (r *InvestmentRepository) Update(ctx context.Context, investment *domain.Investment) error {
	query := `
		UPDATE investments
		SET name = $3, type = $4, principal = $5, current_value = $6, return_rate = $7, start_date = $8
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		investment.ID,
		investment.UserID,
		investment.Name,
		investment.Type,
		decimalToNumeric(investment.Principal),
		decimalToNumeric(investment.CurrentValue),
		decimalToNumeric(investment.ReturnRate),
		timeToPgTimestamptz(investment.StartDate),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvestmentNotFound
	}

	return nil
}

// Delete removes an investment.
func (r *InvestmentRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM investments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvestmentNotFound
	}

	return nil
}

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var (
		investment   domain.Investment
		principal    pgtype.Numeric
		currentValue pgtype.Numeric
		returnRate   pgtype.Numeric
		startDate    pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&investment.ID,
		&investment.UserID,
		&investment.Name,
		&investment.Type,
		&principal,
		&currentValue,
		&returnRate,
		&startDate,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	investment.Principal = numericToDecimal(principal)
	investment.CurrentValue = numericToDecimal(currentValue)
	investment.ReturnRate = numericToDecimal(returnRate)
	investment.StartDate = startDate.Time
	investment.CreatedAt = createdAt.Time

	return &investment, nil
}
