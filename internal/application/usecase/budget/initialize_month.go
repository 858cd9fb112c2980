// Package budget contains budget-plan use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/batchflow/backend/internal/application/adapter"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// InitializeMonthInput represents the input for setting up a month.
type InitializeMonthInput struct {
	MonthKey string
}

// InitializeMonthUseCase marks a month as explicitly set up even if every
// amount stays at zero, so the UI can distinguish "not started" from
// "deliberately empty".
type InitializeMonthUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewInitializeMonthUseCase creates a new InitializeMonthUseCase instance.
func NewInitializeMonthUseCase(budgetRepo adapter.BudgetRepository) *InitializeMonthUseCase {
	return &InitializeMonthUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute marks the month as set up. Idempotent.
func (uc *InitializeMonthUseCase) Execute(ctx context.Context, input InitializeMonthInput) error {
	monthKey, err := valueobject.ParseMonthKey(input.MonthKey)
	if err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be a valid YYYY-MM string",
			domainerror.ErrInvalidMonthKey,
		)
	}

	if err := uc.budgetRepo.EnsureMonth(ctx, monthKey); err != nil {
		return fmt.Errorf("failed to set up month: %w", err)
	}
	return nil
}
