// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetMonthModel represents the budget_months table in the database. A row
// marks a month as explicitly set up, even when every amount stays at zero.
type BudgetMonthModel struct {
	MonthKey  string    `gorm:"type:varchar(7);primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetMonthModel.
func (BudgetMonthModel) TableName() string {
	return "budget_months"
}

// BudgetEntryModel represents the budget_entries table in the database. Each
// row is one planned amount, targeting either a category or a subcategory;
// exactly one of the two target columns is set.
type BudgetEntryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MonthKey      string          `gorm:"type:varchar(7);not null;index:idx_budget_entries_month"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	SubcategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetEntryModel.
func (BudgetEntryModel) TableName() string {
	return "budget_entries"
}
