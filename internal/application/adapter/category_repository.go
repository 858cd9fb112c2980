// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Implementations load and store categories together with their ordered
// subcategory lists.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category, with subcategories, by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves all categories ordered by type and sort order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByType retrieves categories of the given type ordered by sort order.
	FindByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error)

	// ExistsByName checks if a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing category and replaces its subcategory list.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category and its subcategories from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
