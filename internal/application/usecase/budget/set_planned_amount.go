// Package budget contains budget-plan use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/application/adapter"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// PlannedLevel selects which level of the plan an amount targets.
type PlannedLevel string

const (
	LevelCategory    PlannedLevel = "category"
	LevelSubcategory PlannedLevel = "subcategory"
)

// SetPlannedAmountInput represents the input for storing a planned amount.
type SetPlannedAmountInput struct {
	MonthKey string
	Level    PlannedLevel
	TargetID uuid.UUID
	Amount   decimal.Decimal
}

// SetPlannedAmountUseCase stores a category- or subcategory-level planned
// amount, creating the month on first write. Writing a subcategory amount
// (even zero) switches the owning category to subcategory-sum mode; the
// aggregator handles that on read.
type SetPlannedAmountUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetPlannedAmountUseCase creates a new SetPlannedAmountUseCase instance.
func NewSetPlannedAmountUseCase(budgetRepo adapter.BudgetRepository) *SetPlannedAmountUseCase {
	return &SetPlannedAmountUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute stores the planned amount.
func (uc *SetPlannedAmountUseCase) Execute(ctx context.Context, input SetPlannedAmountInput) error {
	monthKey, err := valueobject.ParseMonthKey(input.MonthKey)
	if err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be a valid YYYY-MM string",
			domainerror.ErrInvalidMonthKey,
		)
	}

	if input.Amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativePlannedAmount,
			"planned amount must not be negative",
			domainerror.ErrNegativePlannedAmount,
		)
	}

	if err := uc.budgetRepo.EnsureMonth(ctx, monthKey); err != nil {
		return fmt.Errorf("failed to set up month: %w", err)
	}

	switch input.Level {
	case LevelSubcategory:
		err = uc.budgetRepo.UpsertSubcategoryAmount(ctx, monthKey, input.TargetID, input.Amount)
	default:
		err = uc.budgetRepo.UpsertCategoryAmount(ctx, monthKey, input.TargetID, input.Amount)
	}
	if err != nil {
		return fmt.Errorf("failed to store planned amount: %w", err)
	}
	return nil
}
