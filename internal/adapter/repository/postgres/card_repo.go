package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// CardRepository implements usecase.CardRepository.
type CardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository creates a new CardRepository.
func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

const cardColumns = `id, user_id, name, credit_limit, closing_day, due_day, color, created_at, updated_at`

// Create creates a new credit card.
func (r *CardRepository) Create(ctx context.Context, card *domain.CreditCard) error {
	query := `
		INSERT INTO credit_cards (` + cardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		card.ID,
		card.UserID,
		card.Name,
		decimalToNumeric(card.Limit),
		card.ClosingDay,
		card.DueDay,
		card.Color,
		timeToPgTimestamptz(card.CreatedAt),
		timeToPgTimestamptz(card.UpdatedAt),
	)

	return err
}

// GetByID retrieves a credit card by ID, scoped to its owner.
func (r *CardRepository) GetByID(ctx context.Context, id, userID string) (*domain.CreditCard, error) {
	query := `SELECT ` + cardColumns + ` FROM credit_cards WHERE id = $1 AND user_id = $2`

	card, err := scanCard(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}

		return nil, err
	}

	return card, nil
}

// ListByUser lists a user's credit cards.
func (r *CardRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CreditCard, error) {
	query := `SELECT ` + cardColumns + ` FROM credit_cards WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*domain.CreditCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

// Update updates a credit card.
func (r *CardRepository) Update(ctx context.Context, card *domain.CreditCard) error {
	query := `
		UPDATE credit_cards
		SET name = $3, credit_limit = $4, closing_day = $5, due_day = $6, color = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		card.ID,
		card.UserID,
		card.Name,
		decimalToNumeric(card.Limit),
		card.ClosingDay,
		card.DueDay,
		card.Color,
		timeToPgTimestamptz(card.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}

// Delete removes a credit card.
func (r *CardRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM credit_cards WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}

func scanCard(row pgx.Row) (*domain.CreditCard, error) {
	var (
		card      domain.CreditCard
		limit     pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&card.ID,
		&card.UserID,
		&card.Name,
		&limit,
		&card.ClosingDay,
		&card.DueDay,
		&card.Color,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.Limit = numericToDecimal(limit)
	card.CreatedAt = createdAt.Time
	card.UpdatedAt = updatedAt.Time

	return &card, nil
}
