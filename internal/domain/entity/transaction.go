// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// TransactionKind discriminates the two transaction shapes: a flat
// transaction assigned to a single category, or a split transaction whose
// amount is distributed across multiple category assignments.
type TransactionKind string

const (
	TransactionKindFlat  TransactionKind = "flat"
	TransactionKindSplit TransactionKind = "split"
)

// Transaction represents a financial transaction in the BatchFlow system.
// A transaction belongs to exactly one calendar month, derived from its
// date's year-month prefix; no month field is stored.
type Transaction struct {
	ID            uuid.UUID
	Date          time.Time // Normalized to noon UTC
	Amount        decimal.Decimal
	Type          TransactionType
	CategoryID    *uuid.UUID // Nil for split transactions
	SubcategoryID *uuid.UUID
	Splits        []TransactionSplit // Non-empty only for split transactions
	Merchant      string
	Notes         string
	RuleID        *uuid.UUID // Set when materialized from a recurring rule
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransactionSplit assigns a portion of a split transaction's amount to a
// category. Split amounts must sum to the transaction amount; the write path
// enforces this before the transaction is persisted.
type TransactionSplit struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Amount        decimal.Decimal
}

// NewTransaction creates a new flat Transaction entity.
func NewTransaction(
	date time.Time,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID uuid.UUID,
	subcategoryID *uuid.UUID,
	merchant string,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		Date:          date,
		Amount:        amount,
		Type:          transactionType,
		CategoryID:    &categoryID,
		SubcategoryID: subcategoryID,
		Merchant:      merchant,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewSplitTransaction creates a new split Transaction entity.
func NewSplitTransaction(
	date time.Time,
	amount decimal.Decimal,
	transactionType TransactionType,
	splits []TransactionSplit,
	merchant string,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		Date:      date,
		Amount:    amount,
		Type:      transactionType,
		Splits:    splits,
		Merchant:  merchant,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Kind returns the shape of the transaction. A transaction with no flat
// category assignment and at least one split row is a split transaction.
func (t *Transaction) Kind() TransactionKind {
	if t.CategoryID == nil && len(t.Splits) > 0 {
		return TransactionKindSplit
	}
	return TransactionKindFlat
}

// SplitTotal returns the sum of the split amounts. Zero for flat transactions.
func (t *Transaction) SplitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range t.Splits {
		total = total.Add(s.Amount)
	}
	return total
}

// AffectsCategory reports whether the transaction assigns any amount to the
// given category, through either its flat assignment or one of its splits.
func (t *Transaction) AffectsCategory(categoryID uuid.UUID) bool {
	if t.CategoryID != nil && *t.CategoryID == categoryID {
		return true
	}
	for _, s := range t.Splits {
		if s.CategoryID == categoryID {
			return true
		}
	}
	return false
}
