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

// DeleteSubcategoryInput represents the input for deleting a subcategory.
type DeleteSubcategoryInput struct {
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
}

// DeleteSubcategoryOutput represents the output of deleting a subcategory.
type DeleteSubcategoryOutput struct {
	Category *entity.Category
}

// DeleteSubcategoryUseCase removes a subcategory from its category's list.
type DeleteSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteSubcategoryUseCase creates a new DeleteSubcategoryUseCase instance.
func NewDeleteSubcategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteSubcategoryUseCase {
	return &DeleteSubcategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute removes the subcategory and compacts the remaining positions.
func (uc *DeleteSubcategoryUseCase) Execute(ctx context.Context, input DeleteSubcategoryInput) (*DeleteSubcategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	remaining := make([]entity.Subcategory, 0, len(category.Subcategories))
	found := false
	for _, sub := range category.Subcategories {
		if sub.ID == input.SubcategoryID {
			found = true
			continue
		}
		sub.Position = len(remaining)
		remaining = append(remaining, sub)
	}
	if !found {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSubcategoryNotFound,
			"subcategory does not belong to this category",
			domainerror.ErrSubcategoryNotFound,
		)
	}

	category.Subcategories = remaining
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to delete subcategory: %w", err)
	}

	return &DeleteSubcategoryOutput{
		Category: category,
	}, nil
}
