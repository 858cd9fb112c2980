// Package budget contains budget-plan use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/batchflow/backend/internal/application/adapter"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// CopyBudgetInput represents the input for copying a month's plan. When
// FromMonthKey is empty, the nearest earlier set-up month is used; month
// keys sort lexicographically in chronological order, so "nearest" is a
// simple string comparison.
type CopyBudgetInput struct {
	FromMonthKey string
	ToMonthKey   string
}

// CopyBudgetOutput reports which month the plan was copied from.
type CopyBudgetOutput struct {
	FromMonthKey valueobject.MonthKey
}

// CopyBudgetUseCase copies all planned amounts from one month into another.
type CopyBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCopyBudgetUseCase creates a new CopyBudgetUseCase instance.
func NewCopyBudgetUseCase(budgetRepo adapter.BudgetRepository) *CopyBudgetUseCase {
	return &CopyBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute copies the source month's planned amounts, both levels, into the
// target month.
func (uc *CopyBudgetUseCase) Execute(ctx context.Context, input CopyBudgetInput) (*CopyBudgetOutput, error) {
	toKey, err := valueobject.ParseMonthKey(input.ToMonthKey)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be a valid YYYY-MM string",
			domainerror.ErrInvalidMonthKey,
		)
	}

	var fromKey valueobject.MonthKey
	if input.FromMonthKey != "" {
		fromKey, err = valueobject.ParseMonthKey(input.FromMonthKey)
		if err != nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidMonthKey,
				"month must be a valid YYYY-MM string",
				domainerror.ErrInvalidMonthKey,
			)
		}
	} else {
		fromKey, err = uc.nearestEarlierMonth(ctx, toKey)
		if err != nil {
			return nil, err
		}
	}

	plan, _, err := uc.budgetRepo.FindByMonth(ctx, fromKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load source month: %w", err)
	}

	if err := uc.budgetRepo.EnsureMonth(ctx, toKey); err != nil {
		return nil, fmt.Errorf("failed to set up target month: %w", err)
	}
	for categoryID, amount := range plan.Planned {
		if err := uc.budgetRepo.UpsertCategoryAmount(ctx, toKey, categoryID, amount); err != nil {
			return nil, fmt.Errorf("failed to copy planned amount: %w", err)
		}
	}
	for subcategoryID, amount := range plan.SubcategoryPlanned {
		if err := uc.budgetRepo.UpsertSubcategoryAmount(ctx, toKey, subcategoryID, amount); err != nil {
			return nil, fmt.Errorf("failed to copy planned amount: %w", err)
		}
	}

	return &CopyBudgetOutput{FromMonthKey: fromKey}, nil
}

// nearestEarlierMonth returns the latest set-up month strictly before target.
func (uc *CopyBudgetUseCase) nearestEarlierMonth(ctx context.Context, target valueobject.MonthKey) (valueobject.MonthKey, error) {
	months, err := uc.budgetRepo.ListMonths(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list months: %w", err)
	}

	var nearest valueobject.MonthKey
	for _, m := range months {
		if m < target && m > nearest {
			nearest = m
		}
	}
	if nearest == "" {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthRange,
			"no earlier month to copy from",
			domainerror.ErrInvalidMonthRange,
		)
	}
	return nearest, nil
}
