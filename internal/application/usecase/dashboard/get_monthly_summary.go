// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/budget"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// summaryCacheTTL bounds how stale a cached summary window may get.
const summaryCacheTTL = 5 * time.Minute

// MaxSummaryMonths caps the size of a summary window.
const MaxSummaryMonths = 24

// GetMonthlySummaryInput represents the input for the monthly summary.
// The window covers Months consecutive months ending at EndMonth.
type GetMonthlySummaryInput struct {
	EndMonth string
	Months   int
}

// MonthSummary represents a single month's rollup.
type MonthSummary struct {
	MonthKey         string          `json:"month_key"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	PlannedExpenses  decimal.Decimal `json:"planned_expenses"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// GetMonthlySummaryOutput represents the output of the monthly summary.
type GetMonthlySummaryOutput struct {
	Months []MonthSummary `json:"months"`
}

// GetMonthlySummaryUseCase computes per-month income/expense rollups for a
// window of months. Results are cached as serialized JSON; a cache failure
// never fails the request, the summary is simply recomputed.
type GetMonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	cache           adapter.SummaryCache
	logger          *slog.Logger
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.SummaryCache,
	logger *slog.Logger,
) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
		logger:          logger,
	}
}

// Execute computes the summary window. Months without any transactions or
// budget data are included with zero values so charts have no gaps.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	endMonth, err := valueobject.ParseMonthKey(input.EndMonth)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be a valid YYYY-MM string",
			domainerror.ErrInvalidMonthKey,
		)
	}
	if input.Months < 1 || input.Months > MaxSummaryMonths {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthRange,
			fmt.Sprintf("months must be between 1 and %d", MaxSummaryMonths),
			domainerror.ErrInvalidMonthRange,
		)
	}

	cacheKey := fmt.Sprintf("summary:%s:%d", endMonth, input.Months)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
		var output GetMonthlySummaryOutput
		if err := json.Unmarshal(cached, &output); err == nil {
			return &output, nil
		}
		uc.logger.Warn("discarding unreadable cached summary", "key", cacheKey)
	} else if !errors.Is(err, adapter.ErrCacheMiss) {
		uc.logger.Warn("summary cache lookup failed", "key", cacheKey, "error", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	output := &GetMonthlySummaryOutput{
		Months: make([]MonthSummary, 0, input.Months),
	}
	for i := input.Months - 1; i >= 0; i-- {
		monthKey := endMonth.Add(-i)
		summary, err := uc.summarizeMonth(ctx, monthKey, categories)
		if err != nil {
			return nil, err
		}
		output.Months = append(output.Months, summary)
	}

	if payload, err := json.Marshal(output); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, payload, summaryCacheTTL); err != nil {
			uc.logger.Warn("summary cache store failed", "key", cacheKey, "error", err)
		}
	}

	return output, nil
}

// summarizeMonth folds one month's transactions and budget plan into a summary.
func (uc *GetMonthlySummaryUseCase) summarizeMonth(
	ctx context.Context,
	monthKey valueobject.MonthKey,
	categories []*entity.Category,
) (MonthSummary, error) {
	transactions, err := uc.transactionRepo.FindByMonth(ctx, monthKey)
	if err != nil {
		return MonthSummary{}, fmt.Errorf("failed to load transactions for %s: %w", monthKey, err)
	}

	plan, _, err := uc.budgetRepo.FindByMonth(ctx, monthKey)
	if err != nil {
		return MonthSummary{}, fmt.Errorf("failed to load budget for %s: %w", monthKey, err)
	}

	income := budget.TotalByType(transactions, entity.TransactionTypeIncome)
	expenses := budget.TotalByType(transactions, entity.TransactionTypeExpense)

	return MonthSummary{
		MonthKey:         string(monthKey),
		Income:           income,
		Expenses:         expenses,
		PlannedExpenses:  budget.TotalPlannedByType(categories, plan, entity.CategoryTypeExpense),
		Net:              income.Sub(expenses),
		TransactionCount: len(transactions),
	}, nil
}
