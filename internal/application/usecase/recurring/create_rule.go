// Package recurring contains recurring-rule use cases.
package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// CreateRuleInput represents the input for recurring-rule creation.
type CreateRuleInput struct {
	Label         string
	Amount        decimal.Decimal
	Frequency     entity.Frequency
	StartDate     string // YYYY-MM-DD
	EndDate       string // Optional; empty means the rule never ends
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Merchant      string
	Notes         string
}

// CreateRuleOutput represents the output of recurring-rule creation.
type CreateRuleOutput struct {
	Rule *entity.RecurringRule
}

// CreateRuleUseCase handles recurring-rule creation logic. The recurrence
// engine assumes endDate >= startDate and a known frequency; this write
// path enforces both before a rule is stored.
type CreateRuleUseCase struct {
	ruleRepo     adapter.RecurringRuleRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateRuleUseCase creates a new CreateRuleUseCase instance.
func NewCreateRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the recurring-rule creation. The rule inherits its
// transaction type from the assigned category.
func (uc *CreateRuleUseCase) Execute(ctx context.Context, input CreateRuleInput) (*CreateRuleOutput, error) {
	if input.Label == "" {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingLabel,
			"label is required",
			domainerror.ErrMissingLabel,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if !isValidFrequency(input.Frequency) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be weekly, biweekly, monthly or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	startDate, endDate, err := parseBounds(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if input.SubcategoryID != nil && category.SubcategoryByID(*input.SubcategoryID) == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSubcategoryMismatch,
			"subcategory does not belong to the assigned category",
			domainerror.ErrSubcategoryMismatch,
		)
	}

	transactionType := entity.TransactionTypeExpense
	if category.Type == entity.CategoryTypeIncome {
		transactionType = entity.TransactionTypeIncome
	}

	rule := entity.NewRecurringRule(
		input.Label,
		input.Amount,
		transactionType,
		input.Frequency,
		startDate,
		endDate,
		input.CategoryID,
		input.SubcategoryID,
		input.Merchant,
		input.Notes,
	)

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create recurring rule: %w", err)
	}

	return &CreateRuleOutput{
		Rule: rule,
	}, nil
}

// parseBounds parses and validates a rule's start/end dates.
func parseBounds(start, end string) (time.Time, *time.Time, error) {
	startDate, err := valueobject.ParseDay(start)
	if err != nil {
		return time.Time{}, nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDate,
			"start date must be a valid YYYY-MM-DD string",
			domainerror.ErrInvalidDate,
		)
	}

	if end == "" {
		return startDate, nil, nil
	}

	endDate, err := valueobject.ParseDay(end)
	if err != nil {
		return time.Time{}, nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDate,
			"end date must be a valid YYYY-MM-DD string",
			domainerror.ErrInvalidDate,
		)
	}
	if endDate.Before(startDate) {
		return time.Time{}, nil, domainerror.NewRecurringError(
			domainerror.ErrCodeEndBeforeStart,
			"end date must not be before start date",
			domainerror.ErrEndBeforeStart,
		)
	}
	return startDate, &endDate, nil
}

// isValidFrequency validates the rule frequency.
func isValidFrequency(frequency entity.Frequency) bool {
	switch frequency {
	case entity.FrequencyWeekly, entity.FrequencyBiweekly, entity.FrequencyMonthly, entity.FrequencyYearly:
		return true
	}
	return false
}
