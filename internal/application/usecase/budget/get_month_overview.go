// Package budget contains budget-plan use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/application/adapter"
	domainbudget "github.com/batchflow/backend/internal/domain/budget"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// GetMonthOverviewInput represents the input for the month overview.
type GetMonthOverviewInput struct {
	MonthKey string
}

// SubcategoryProgress is the derived state of one subcategory for the month.
type SubcategoryProgress struct {
	ID      uuid.UUID
	Name    string
	Spent   decimal.Decimal
	Planned decimal.Decimal
	Percent int
	Status  domainbudget.ProgressStatus
}

// CategoryProgress is the derived state of one category for the month.
// Planned is the effective planned amount after subcategory roll-up;
// CategoryPlanned is the raw category-level entry kept for pre-migration data.
type CategoryProgress struct {
	ID              uuid.UUID
	Name            string
	Color           string
	Type            entity.CategoryType
	Spent           decimal.Decimal
	Planned         decimal.Decimal
	CategoryPlanned decimal.Decimal
	Percent         int
	Status          domainbudget.ProgressStatus
	Subcategories   []SubcategoryProgress
}

// GetMonthOverviewOutput is the full derived payload for one month: the
// per-category progress plus the totals the dashboard renders.
type GetMonthOverviewOutput struct {
	MonthKey        valueobject.MonthKey
	Initialized     bool
	Categories      []CategoryProgress
	ActualIncome    decimal.Decimal
	ActualExpenses  decimal.Decimal
	PlannedIncome   decimal.Decimal
	PlannedExpenses decimal.Decimal
	Net             decimal.Decimal
	Unbudgeted      decimal.Decimal
}

// GetMonthOverviewUseCase assembles the month's derived budget state by
// snapshotting the stored collections and folding the aggregator over them.
type GetMonthOverviewUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
}

// NewGetMonthOverviewUseCase creates a new GetMonthOverviewUseCase instance.
func NewGetMonthOverviewUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) *GetMonthOverviewUseCase {
	return &GetMonthOverviewUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

// Execute computes the month overview.
func (uc *GetMonthOverviewUseCase) Execute(ctx context.Context, input GetMonthOverviewInput) (*GetMonthOverviewOutput, error) {
	monthKey, err := valueobject.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be a valid YYYY-MM string",
			domainerror.ErrInvalidMonthKey,
		)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	transactions, err := uc.transactionRepo.FindByMonth(ctx, monthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	plan, initialized, err := uc.budgetRepo.FindByMonth(ctx, monthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget plan: %w", err)
	}

	progress := make([]CategoryProgress, 0, len(categories))
	for _, c := range categories {
		spent := domainbudget.CategorySpent(transactions, c.ID)
		planned := domainbudget.CategoryEffectivePlanned(c, plan)

		cp := CategoryProgress{
			ID:              c.ID,
			Name:            c.Name,
			Color:           c.Color,
			Type:            c.Type,
			Spent:           spent,
			Planned:         planned,
			CategoryPlanned: domainbudget.CategoryPlanned(plan, c.ID),
			Percent:         domainbudget.ProgressPercent(spent, planned),
			Status:          domainbudget.ClassifyProgress(spent, planned),
		}

		for _, sub := range c.Subcategories {
			subSpent := domainbudget.SubcategorySpent(transactions, sub.ID)
			subPlanned := domainbudget.SubcategoryPlanned(plan, sub.ID)
			cp.Subcategories = append(cp.Subcategories, SubcategoryProgress{
				ID:      sub.ID,
				Name:    sub.Name,
				Spent:   subSpent,
				Planned: subPlanned,
				Percent: domainbudget.ProgressPercent(subSpent, subPlanned),
				Status:  domainbudget.ClassifyProgress(subSpent, subPlanned),
			})
		}

		progress = append(progress, cp)
	}

	actualIncome := domainbudget.TotalByType(transactions, entity.TransactionTypeIncome)
	actualExpenses := domainbudget.TotalByType(transactions, entity.TransactionTypeExpense)

	return &GetMonthOverviewOutput{
		MonthKey:        monthKey,
		Initialized:     initialized,
		Categories:      progress,
		ActualIncome:    actualIncome,
		ActualExpenses:  actualExpenses,
		PlannedIncome:   domainbudget.TotalPlannedByType(categories, plan, entity.CategoryTypeIncome),
		PlannedExpenses: domainbudget.TotalPlannedByType(categories, plan, entity.CategoryTypeExpense),
		Net:             actualIncome.Sub(actualExpenses),
		Unbudgeted:      domainbudget.UnbudgetedAmount(categories, plan),
	}, nil
}
