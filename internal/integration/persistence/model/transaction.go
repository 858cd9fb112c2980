// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/domain/entity"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database. The
// month a transaction belongs to is derived from its date; no month column
// exists.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type          string          `gorm:"type:varchar(10);not null;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"` // Null for split transactions
	SubcategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Merchant      string          `gorm:"type:varchar(255)"`
	Notes         string          `gorm:"type:text"`
	RuleID        *uuid.UUID      `gorm:"type:uuid;index"` // Set when materialized from a recurring rule
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Loaded with Preload; non-empty only for split transactions.
	Splits []TransactionSplitModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionSplitModel represents the transaction_splits table in the database.
type TransactionSplitModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubcategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the TransactionSplitModel.
func (TransactionSplitModel) TableName() string {
	return "transaction_splits"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	splits := make([]entity.TransactionSplit, len(m.Splits))
	for i, split := range m.Splits {
		splits[i] = entity.TransactionSplit{
			ID:            split.ID,
			CategoryID:    split.CategoryID,
			SubcategoryID: split.SubcategoryID,
			Amount:        split.Amount,
		}
	}

	return &entity.Transaction{
		ID: m.ID,
		// Date columns drop the time of day; restore the noon anchor the
		// calendar math relies on.
		Date:          valueobject.Noon(m.Date),
		Amount:        m.Amount,
		Type:          entity.TransactionType(m.Type),
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		Splits:        splits,
		Merchant:      m.Merchant,
		Notes:         m.Notes,
		RuleID:        m.RuleID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	splits := make([]TransactionSplitModel, len(transaction.Splits))
	for i, split := range transaction.Splits {
		splits[i] = TransactionSplitModel{
			ID:            split.ID,
			TransactionID: transaction.ID,
			CategoryID:    split.CategoryID,
			SubcategoryID: split.SubcategoryID,
			Amount:        split.Amount,
		}
	}

	return &TransactionModel{
		ID:            transaction.ID,
		Date:          transaction.Date,
		Amount:        transaction.Amount,
		Type:          string(transaction.Type),
		CategoryID:    transaction.CategoryID,
		SubcategoryID: transaction.SubcategoryID,
		Splits:        splits,
		Merchant:      transaction.Merchant,
		Notes:         transaction.Notes,
		RuleID:        transaction.RuleID,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
