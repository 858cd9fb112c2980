// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
)

// UpdateSubcategoryInput represents the input for renaming a subcategory.
type UpdateSubcategoryInput struct {
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
	Name          string
}

// UpdateSubcategoryOutput represents the output of renaming a subcategory.
type UpdateSubcategoryOutput struct {
	Category *entity.Category
}

// UpdateSubcategoryUseCase renames a subcategory in place.
type UpdateSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateSubcategoryUseCase creates a new UpdateSubcategoryUseCase instance.
func NewUpdateSubcategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateSubcategoryUseCase {
	return &UpdateSubcategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute renames the subcategory, preserving its position.
func (uc *UpdateSubcategoryUseCase) Execute(ctx context.Context, input UpdateSubcategoryInput) (*UpdateSubcategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	subcategory := category.SubcategoryByID(input.SubcategoryID)
	if subcategory == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSubcategoryNotFound,
			"subcategory does not belong to this category",
			domainerror.ErrSubcategoryNotFound,
		)
	}

	subcategory.Name = input.Name
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update subcategory: %w", err)
	}

	return &UpdateSubcategoryOutput{
		Category: category,
	}, nil
}
