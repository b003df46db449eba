package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, user_id, name, type, color, icon, created_at`

// Create creates a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		string(category.Type),
		category.Color,
		category.Icon,
		timeToPgTimestamptz(category.CreatedAt),
	)

	return err
}

// GetByID retrieves a category by ID, scoped to its owner.
func (r *CategoryRepository) GetByID(ctx context.Context, id, userID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND user_id = $2`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return category, nil
}

// ListByUser lists a user's categories.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// Update updates a category.
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $3, color = $4, icon = $5
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		category.Color,
		category.Icon,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category.
func (r *CategoryRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		category  domain.Category
		catType   string
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&catType,
		&category.Color,
		&category.Icon,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	category.Type = domain.TxType(catType)
	category.CreatedAt = createdAt.Time

	return &category, nil
}
