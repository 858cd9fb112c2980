// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing a month's transactions.
type ListTransactionsInput struct {
	MonthKey string
	// CategoryID optionally restricts the listing to transactions affecting
	// the category, through either flat assignment or split rows.
	CategoryID *uuid.UUID
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the month's transactions ordered by date.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	monthKey, err := valueobject.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be a valid YYYY-MM string",
			domainerror.ErrInvalidMonthKey,
		)
	}

	transactions, err := uc.transactionRepo.FindByMonth(ctx, monthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if input.CategoryID != nil {
		filtered := make([]*entity.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if t.AffectsCategory(*input.CategoryID) {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
	}, nil
}
