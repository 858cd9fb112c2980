// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion. Transactions referencing the
// category keep their assignment and simply contribute to no known category
// afterwards; the aggregator treats unknown ids as contributing zero.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	// Confirm existence so the caller gets a domain error, not a silent no-op.
	if _, err := uc.categoryRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
