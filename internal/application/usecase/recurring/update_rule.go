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

// UpdateRuleInput represents the input for recurring-rule update.
// Nil fields are left unchanged.
type UpdateRuleInput struct {
	RuleID           uuid.UUID
	Label            *string
	Amount           *decimal.Decimal
	Frequency        *entity.Frequency
	StartDate        *string
	EndDate          *string // Pointer to empty string clears the end date
	CategoryID       *uuid.UUID
	SubcategoryID    *uuid.UUID
	ClearSubcategory bool
	Merchant         *string
	Notes            *string
}

// UpdateRuleOutput represents the output of recurring-rule update.
type UpdateRuleOutput struct {
	Rule *entity.RecurringRule
}

// UpdateRuleUseCase handles recurring-rule update logic. Editing a rule only
// affects future materialization; transactions already generated keep their
// original values.
type UpdateRuleUseCase struct {
	ruleRepo     adapter.RecurringRuleRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateRuleUseCase creates a new UpdateRuleUseCase instance.
func NewUpdateRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the recurring-rule update.
func (uc *UpdateRuleUseCase) Execute(ctx context.Context, input UpdateRuleInput) (*UpdateRuleOutput, error) {
	rule, err := uc.ruleRepo.FindByID(ctx, input.RuleID)
	if err != nil {
		return nil, err
	}

	if input.Label != nil {
		if *input.Label == "" {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingLabel,
				"label is required",
				domainerror.ErrMissingLabel,
			)
		}
		rule.Label = *input.Label
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		rule.Amount = *input.Amount
	}

	if input.Frequency != nil {
		if !isValidFrequency(*input.Frequency) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be weekly, biweekly, monthly or yearly",
				domainerror.ErrInvalidFrequency,
			)
		}
		rule.Frequency = *input.Frequency
	}

	if input.StartDate != nil {
		startDate, err := valueobject.ParseDay(*input.StartDate)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidDate,
				"start date must be a valid YYYY-MM-DD string",
				domainerror.ErrInvalidDate,
			)
		}
		rule.StartDate = startDate
	}

	if input.EndDate != nil {
		if *input.EndDate == "" {
			rule.EndDate = nil
		} else {
			endDate, err := valueobject.ParseDay(*input.EndDate)
			if err != nil {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeInvalidDate,
					"end date must be a valid YYYY-MM-DD string",
					domainerror.ErrInvalidDate,
				)
			}
			rule.EndDate = &endDate
		}
	}

	if rule.EndDate != nil && rule.EndDate.Before(rule.StartDate) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeEndBeforeStart,
			"end date must not be before start date",
			domainerror.ErrEndBeforeStart,
		)
	}

	if input.CategoryID != nil {
		rule.CategoryID = *input.CategoryID
	}
	if input.ClearSubcategory {
		rule.SubcategoryID = nil
	} else if input.SubcategoryID != nil {
		rule.SubcategoryID = input.SubcategoryID
	}

	if input.CategoryID != nil || input.SubcategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, rule.CategoryID)
		if err != nil {
			return nil, err
		}
		if rule.SubcategoryID != nil && category.SubcategoryByID(*rule.SubcategoryID) == nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeSubcategoryMismatch,
				"subcategory does not belong to the assigned category",
				domainerror.ErrSubcategoryMismatch,
			)
		}
		if category.Type == entity.CategoryTypeIncome {
			rule.Type = entity.TransactionTypeIncome
		} else {
			rule.Type = entity.TransactionTypeExpense
		}
	}

	if input.Merchant != nil {
		rule.Merchant = *input.Merchant
	}
	if input.Notes != nil {
		rule.Notes = *input.Notes
	}

	rule.UpdatedAt = time.Now().UTC()

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to update recurring rule: %w", err)
	}

	return &UpdateRuleOutput{
		Rule: rule,
	}, nil
}
