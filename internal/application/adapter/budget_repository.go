// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/domain/entity"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// BudgetRepository defines the interface for budget-plan persistence
// operations. A month's plan is reconstituted into the two planned-amount
// maps the aggregator consumes.
type BudgetRepository interface {
	// FindByMonth retrieves the budget plan for a month. The second return
	// value reports whether the month has been set up; an uninitialized
	// month yields an empty plan and false, never an error.
	FindByMonth(ctx context.Context, monthKey valueobject.MonthKey) (*entity.BudgetPlan, bool, error)

	// EnsureMonth marks a month as explicitly set up, even if all amounts
	// stay at zero.
	EnsureMonth(ctx context.Context, monthKey valueobject.MonthKey) error

	// UpsertCategoryAmount stores a category-level planned amount for a month.
	UpsertCategoryAmount(ctx context.Context, monthKey valueobject.MonthKey, categoryID uuid.UUID, amount decimal.Decimal) error

	// UpsertSubcategoryAmount stores a subcategory-level planned amount for a month.
	UpsertSubcategoryAmount(ctx context.Context, monthKey valueobject.MonthKey, subcategoryID uuid.UUID, amount decimal.Decimal) error

	// ListMonths returns the set-up months in chronological order.
	ListMonths(ctx context.Context) ([]valueobject.MonthKey, error)
}
