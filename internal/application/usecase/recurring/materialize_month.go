package recurring

import (
	"context"
	"fmt"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/recurrence"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// MaterializeMonthInput represents the input for month materialization.
type MaterializeMonthInput struct {
	MonthKey string
}

// MaterializeMonthOutput represents the output of month materialization.
type MaterializeMonthOutput struct {
	Created []*entity.Transaction
	Skipped int // Occurrence dates already materialized for their rule
}

// MaterializeMonthUseCase projects every active recurring rule into a month
// and creates the transactions that are not there yet. Materialization is
// idempotent per rule and date: an occurrence whose date already has a
// transaction linked to the rule is skipped, so re-running the use case for
// the same month creates nothing new.
type MaterializeMonthUseCase struct {
	ruleRepo        adapter.RecurringRuleRepository
	transactionRepo adapter.TransactionRepository
}

// NewMaterializeMonthUseCase creates a new MaterializeMonthUseCase instance.
func NewMaterializeMonthUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	transactionRepo adapter.TransactionRepository,
) *MaterializeMonthUseCase {
	return &MaterializeMonthUseCase{
		ruleRepo:        ruleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the month materialization. Paused rules are skipped
// entirely; their occurrence dates produce no transactions until the rule
// is resumed.
func (uc *MaterializeMonthUseCase) Execute(ctx context.Context, input MaterializeMonthInput) (*MaterializeMonthOutput, error) {
	monthKey, err := valueobject.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be a valid YYYY-MM string",
			domainerror.ErrInvalidMonthKey,
		)
	}

	rules, err := uc.ruleRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring rules: %w", err)
	}

	output := &MaterializeMonthOutput{}
	for _, rule := range rules {
		occurrences := recurrence.OccurrencesInMonth(rule, monthKey)
		if len(occurrences) == 0 {
			continue
		}

		existing, err := uc.transactionRepo.FindByRuleAndMonth(ctx, rule.ID, monthKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load materialized transactions: %w", err)
		}
		materialized := make(map[string]bool, len(existing))
		for _, t := range existing {
			materialized[valueobject.FormatDay(t.Date)] = true
		}

		for _, day := range occurrences {
			if materialized[day] {
				output.Skipped++
				continue
			}

			date, err := valueobject.ParseDay(day)
			if err != nil {
				return nil, fmt.Errorf("failed to parse occurrence date %q: %w", day, err)
			}

			transaction := entity.NewTransaction(
				date,
				rule.Amount,
				rule.Type,
				rule.CategoryID,
				rule.SubcategoryID,
				rule.Merchant,
				rule.Label,
			)
			ruleID := rule.ID
			transaction.RuleID = &ruleID

			if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
				return nil, fmt.Errorf("failed to create materialized transaction: %w", err)
			}
			output.Created = append(output.Created, transaction)
		}
	}

	return output, nil
}
