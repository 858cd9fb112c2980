// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// SplitInput is one category assignment of a split transaction.
type SplitInput struct {
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Amount        decimal.Decimal
}

// CreateTransactionInput represents the input for transaction creation.
// Either CategoryID (flat form) or Splits (split form) must be provided,
// never both.
type CreateTransactionInput struct {
	Date          string // YYYY-MM-DD
	Amount        decimal.Decimal
	Type          entity.TransactionType
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Splits        []SplitInput
	Merchant      string
	Notes         string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic. The engine
// downstream assumes its invariants hold (positive amount, splits summing to
// the total, subcategory ownership), so this write path is where they are
// enforced.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	date, err := valueobject.ParseDay(input.Date)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDate,
			"date must be a valid YYYY-MM-DD string",
			domainerror.ErrInvalidDate,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	var created *entity.Transaction
	switch {
	case input.CategoryID != nil:
		if err := uc.validateAssignment(ctx, *input.CategoryID, input.SubcategoryID); err != nil {
			return nil, err
		}
		created = entity.NewTransaction(
			date, input.Amount, input.Type,
			*input.CategoryID, input.SubcategoryID,
			input.Merchant, input.Notes,
		)
	default:
		splits, err := uc.buildSplits(ctx, input.Amount, input.Splits)
		if err != nil {
			return nil, err
		}
		created = entity.NewSplitTransaction(
			date, input.Amount, input.Type,
			splits, input.Merchant, input.Notes,
		)
	}

	if err := uc.transactionRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: created,
	}, nil
}

// validateAssignment checks that the category exists and, when a subcategory
// is given, that it belongs to that category.
func (uc *CreateTransactionUseCase) validateAssignment(ctx context.Context, categoryID uuid.UUID, subcategoryID *uuid.UUID) error {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if subcategoryID != nil && category.SubcategoryByID(*subcategoryID) == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeSubcategoryMismatch,
			"subcategory does not belong to the assigned category",
			domainerror.ErrSubcategoryMismatch,
		)
	}
	return nil
}

// buildSplits validates the split rows and materializes them as entities.
func (uc *CreateTransactionUseCase) buildSplits(ctx context.Context, total decimal.Decimal, inputs []SplitInput) ([]entity.TransactionSplit, error) {
	if len(inputs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptySplits,
			"a split transaction requires at least one split",
			domainerror.ErrEmptySplits,
		)
	}

	splits := make([]entity.TransactionSplit, 0, len(inputs))
	sum := decimal.Zero
	for _, in := range inputs {
		if err := uc.validateAssignment(ctx, in.CategoryID, in.SubcategoryID); err != nil {
			return nil, err
		}
		sum = sum.Add(in.Amount)
		splits = append(splits, entity.TransactionSplit{
			ID:            uuid.New(),
			CategoryID:    in.CategoryID,
			SubcategoryID: in.SubcategoryID,
			Amount:        in.Amount,
		})
	}

	if !sum.Equal(total) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSplitSumMismatch,
			fmt.Sprintf("split amounts sum to %s, transaction amount is %s", sum, total),
			domainerror.ErrSplitSumMismatch,
		)
	}
	return splits, nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
