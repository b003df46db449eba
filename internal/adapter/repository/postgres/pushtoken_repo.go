package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// PushTokenRepository implements usecase.PushTokenRepository.
type PushTokenRepository struct {
	pool *pgxpool.Pool
}

// NewPushTokenRepository creates a new PushTokenRepository.
func NewPushTokenRepository(pool *pgxpool.Pool) *PushTokenRepository {
	return &PushTokenRepository{pool: pool}
}

// Register upserts a device token; re-registering is a no-op.
func (r *PushTokenRepository) Register(ctx context.Context, token *domain.PushToken) error {
	query := `
		INSERT INTO push_tokens (id, user_id, token, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, token) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query,
		token.ID, token.UserID, token.Token, timeToPgTimestamptz(token.CreatedAt))

	return err
}

// ListByUser lists a user's device tokens.
func (r *PushTokenRepository) ListByUser(ctx context.Context, userID string) ([]*domain.PushToken, error) {
	query := `SELECT id, user_id, token, created_at FROM push_tokens WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []*domain.PushToken
	for rows.Next() {
		var (
			token     domain.PushToken
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&token.ID, &token.UserID, &token.Token, &createdAt); err != nil {
			return nil, err
		}
		token.CreatedAt = createdAt.Time
		tokens = append(tokens, &token)
	}

	return tokens, rows.Err()
}

// Delete removes a device token.
func (r *PushTokenRepository) Delete(ctx context.Context, userID, token string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM push_tokens WHERE user_id = $1 AND token = $2`, userID, token)

	return err
}
