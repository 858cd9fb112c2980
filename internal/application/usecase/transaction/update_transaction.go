// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for transaction update. The
// assignment (flat category or splits) is always provided in full; partial
// split edits are not supported.
type UpdateTransactionInput struct {
	ID            uuid.UUID
	Date          string
	Amount        decimal.Decimal
	Type          entity.TransactionType
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Splits        []SplitInput
	Merchant      string
	Notes         string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update, re-running the same invariant
// checks as creation.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

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

	creator := &CreateTransactionUseCase{
		transactionRepo: uc.transactionRepo,
		categoryRepo:    uc.categoryRepo,
	}

	existing.Date = date
	existing.Amount = input.Amount
	existing.Type = input.Type
	existing.Merchant = input.Merchant
	existing.Notes = input.Notes

	switch {
	case input.CategoryID != nil:
		if err := creator.validateAssignment(ctx, *input.CategoryID, input.SubcategoryID); err != nil {
			return nil, err
		}
		existing.CategoryID = input.CategoryID
		existing.SubcategoryID = input.SubcategoryID
		existing.Splits = nil
	default:
		splits, err := creator.buildSplits(ctx, input.Amount, input.Splits)
		if err != nil {
			return nil, err
		}
		existing.CategoryID = nil
		existing.SubcategoryID = nil
		existing.Splits = splits
	}

	existing.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: existing,
	}, nil
}
