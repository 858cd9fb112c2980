// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/application/adapter"
	domainerror "github.com/batchflow/backend/internal/domain/error"
)

// MoveDirection indicates which way a category moves within its type group.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// ReorderCategoryInput represents the input for moving a category.
type ReorderCategoryInput struct {
	ID        uuid.UUID
	Direction MoveDirection
}

// ReorderCategoryUseCase moves a category one position up or down within its
// type group (income categories and expense categories order independently).
type ReorderCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewReorderCategoryUseCase creates a new ReorderCategoryUseCase instance.
func NewReorderCategoryUseCase(categoryRepo adapter.CategoryRepository) *ReorderCategoryUseCase {
	return &ReorderCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute swaps the category's sort order with its neighbour in the chosen
// direction. Moving the first category up or the last one down is a no-op.
func (uc *ReorderCategoryUseCase) Execute(ctx context.Context, input ReorderCategoryInput) error {
	if input.Direction != MoveUp && input.Direction != MoveDown {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidMoveDirection,
			"direction must be 'up' or 'down'",
			domainerror.ErrInvalidMoveDirection,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	siblings, err := uc.categoryRepo.FindByType(ctx, category.Type)
	if err != nil {
		return fmt.Errorf("failed to load type group: %w", err)
	}

	pos := -1
	for i, c := range siblings {
		if c.ID == category.ID {
			pos = i
			break
		}
	}
	if pos == -1 {
		return domainerror.ErrCategoryNotFound
	}

	target := pos - 1
	if input.Direction == MoveDown {
		target = pos + 1
	}
	if target < 0 || target >= len(siblings) {
		return nil // already at the edge of its group
	}

	siblings[pos].SortOrder, siblings[target].SortOrder = siblings[target].SortOrder, siblings[pos].SortOrder

	if err := uc.categoryRepo.Update(ctx, siblings[pos]); err != nil {
		return fmt.Errorf("failed to persist reorder: %w", err)
	}
	if err := uc.categoryRepo.Update(ctx, siblings[target]); err != nil {
		return fmt.Errorf("failed to persist reorder: %w", err)
	}
	return nil
}
