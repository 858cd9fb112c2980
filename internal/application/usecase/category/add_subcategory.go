// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
)

// AddSubcategoryInput represents the input for adding a subcategory.
type AddSubcategoryInput struct {
	CategoryID uuid.UUID
	Name       string
}

// AddSubcategoryOutput represents the output of adding a subcategory.
type AddSubcategoryOutput struct {
	Category    *entity.Category
	Subcategory entity.Subcategory
}

// AddSubcategoryUseCase appends a subcategory to a category's ordered list.
type AddSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewAddSubcategoryUseCase creates a new AddSubcategoryUseCase instance.
func NewAddSubcategoryUseCase(categoryRepo adapter.CategoryRepository) *AddSubcategoryUseCase {
	return &AddSubcategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute adds the subcategory at the end of the category's list.
func (uc *AddSubcategoryUseCase) Execute(ctx context.Context, input AddSubcategoryInput) (*AddSubcategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	subcategory := entity.NewSubcategory(input.Name, len(category.Subcategories))
	category.Subcategories = append(category.Subcategories, subcategory)
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to add subcategory: %w", err)
	}

	return &AddSubcategoryOutput{
		Category:    category,
		Subcategory: subcategory,
	}, nil
}
