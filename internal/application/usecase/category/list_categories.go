// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	// Type optionally restricts the listing to one category type.
	Type *entity.CategoryType
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves categories ordered by type and user-controlled sort order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	var (
		categories []*entity.Category
		err        error
	)

	if input.Type != nil {
		categories, err = uc.categoryRepo.FindByType(ctx, *input.Type)
	} else {
		categories, err = uc.categoryRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
