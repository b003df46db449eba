package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// GoalRepository implements usecase.GoalRepository.
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

const goalColumns = `id, user_id, name, target, current_amount, deadline, color, created_at`

// Create creates a new goal.
func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Name,
		decimalToNumeric(goal.Target),
		decimalToNumeric(goal.CurrentAmount),
		ptrToPgTimestamptz(goal.Deadline),
		goal.Color,
		timeToPgTimestamptz(goal.CreatedAt),
	)

	return err
}

// GetByID retrieves a goal by ID, scoped to its owner.
func (r *GoalRepository) GetByID(ctx context.Context, id, userID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`

	goal, err := scanGoal(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}

		return nil, err
	}

	return goal, nil
}

// ListByUser lists a user's goals.
func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// Update updates a goal.
func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	query := `
		UPDATE goals
		SET name = $3, target = $4, current_amount = $5, deadline = $6, color = $7
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Name,
		decimalToNumeric(goal.Target),
		decimalToNumeric(goal.CurrentAmount),
		ptrToPgTimestamptz(goal.Deadline),
		goal.Color,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

// Delete removes a goal.
func (r *GoalRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		goal      domain.Goal
		target    pgtype.Numeric
		current   pgtype.Numeric
		deadline  pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&target,
		&current,
		&deadline,
		&goal.Color,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	goal.Target = numericToDecimal(target)
	goal.CurrentAmount = numericToDecimal(current)
	goal.Deadline = pgTimestamptzToPtr(deadline)
	goal.CreatedAt = createdAt.Time

	return &goal, nil
}
