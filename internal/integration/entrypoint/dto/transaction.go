// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/batchflow/backend/internal/domain/entity"
)

// SplitRequest represents one category assignment of a split transaction.
type SplitRequest struct {
	CategoryID    string  `json:"category_id" binding:"required,uuid"`
	SubcategoryID *string `json:"subcategory_id,omitempty" binding:"omitempty,uuid"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

// CreateTransactionRequest represents the request body for transaction
// creation. Either category_id (flat form) or splits (split form) must be
// provided, never both.
type CreateTransactionRequest struct {
	Date          string         `json:"date" binding:"required"`
	Amount        float64        `json:"amount" binding:"required,gt=0"`
	Type          string         `json:"type" binding:"required,oneof=expense income"`
	CategoryID    *string        `json:"category_id,omitempty" binding:"omitempty,uuid"`
	SubcategoryID *string        `json:"subcategory_id,omitempty" binding:"omitempty,uuid"`
	Splits        []SplitRequest `json:"splits,omitempty"`
	Merchant      string         `json:"merchant,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction
// update. The assignment is replaced wholesale, so the same shape as
// creation applies.
type UpdateTransactionRequest struct {
	Date          string         `json:"date" binding:"required"`
	Amount        float64        `json:"amount" binding:"required,gt=0"`
	Type          string         `json:"type" binding:"required,oneof=expense income"`
	CategoryID    *string        `json:"category_id,omitempty" binding:"omitempty,uuid"`
	SubcategoryID *string        `json:"subcategory_id,omitempty" binding:"omitempty,uuid"`
	Splits        []SplitRequest `json:"splits,omitempty"`
	Merchant      string         `json:"merchant,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// SplitResponse represents one split row in API responses.
type SplitResponse struct {
	ID            string  `json:"id"`
	CategoryID    string  `json:"category_id"`
	SubcategoryID *string `json:"subcategory_id,omitempty"`
	Amount        string  `json:"amount"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Amount        string          `json:"amount"`
	Type          string          `json:"type"`
	Kind          string          `json:"kind"`
	CategoryID    *string         `json:"category_id,omitempty"`
	SubcategoryID *string         `json:"subcategory_id,omitempty"`
	Splits        []SplitResponse `json:"splits,omitempty"`
	Merchant      string          `json:"merchant,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	RuleID        *string         `json:"rule_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO. Dates are rendered as YYYY-MM-DD.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:            transaction.ID.String(),
		Date:          transaction.Date.Format("2006-01-02"),
		Amount:        transaction.Amount.String(),
		Type:          string(transaction.Type),
		Kind:          string(transaction.Kind()),
		CategoryID:    uuidString(transaction.CategoryID),
		SubcategoryID: uuidString(transaction.SubcategoryID),
		Merchant:      transaction.Merchant,
		Notes:         transaction.Notes,
		RuleID:        uuidString(transaction.RuleID),
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}

	for _, split := range transaction.Splits {
		response.Splits = append(response.Splits, SplitResponse{
			ID:            split.ID.String(),
			CategoryID:    split.CategoryID.String(),
			SubcategoryID: uuidString(split.SubcategoryID),
			Amount:        split.Amount.String(),
		})
	}
	return response
}

// ToTransactionListResponse converts domain transactions to a
// TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}
