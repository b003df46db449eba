package usecase

import (
	"context"
	"time"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// CategoryUseCase manages transaction categories.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	idGen        IDGenerator
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository, idGen IDGenerator) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, idGen: idGen}
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	Name  string
	Type  domain.TxType
	Color string
	Icon  string
}

// CreateCategory creates a new category.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, userID string, input CreateCategoryInput) (*domain.Category, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidType
	}
	if err := domain.ValidateDescription(input.Name); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:        uc.idGen.Generate(),
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		Color:     input.Color,
		Icon:      input.Icon,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all categories for a user.
func (uc *CategoryUseCase) ListCategories(ctx context.Context, userID string) ([]*domain.Category, error) {
	return uc.categoryRepo.ListByUser(ctx, userID)
}

// UpdateCategoryInput represents a partial category update.
type UpdateCategoryInput struct {
	Name  *string
	Color *string
	Icon  *string
}

// UpdateCategory edits a category's descriptive fields.
func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, id, userID string, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateDescription(*input.Name); err != nil {
			return nil, err
		}
		category.Name = *input.Name
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Transactions keep their category id;
// readers treat a missing category as uncategorized.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id, userID string) error {
	return uc.categoryRepo.Delete(ctx, id, userID)
}
