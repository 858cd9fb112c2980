// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/domain/valueobject"
)

// BudgetPlan holds the planned amounts for a single calendar month. Planned
// amounts exist at two levels: per category and per subcategory. Once any
// subcategory of a category has an entry (even an explicit zero), the
// category's effective planned amount is the subcategory sum; the
// category-level entry survives only as legacy data.
type BudgetPlan struct {
	MonthKey           valueobject.MonthKey
	Planned            map[uuid.UUID]decimal.Decimal
	SubcategoryPlanned map[uuid.UUID]decimal.Decimal
}

// NewBudgetPlan creates an empty BudgetPlan for the given month.
func NewBudgetPlan(monthKey valueobject.MonthKey) *BudgetPlan {
	return &BudgetPlan{
		MonthKey:           monthKey,
		Planned:            map[uuid.UUID]decimal.Decimal{},
		SubcategoryPlanned: map[uuid.UUID]decimal.Decimal{},
	}
}

// SetCategoryPlanned records a category-level planned amount.
func (p *BudgetPlan) SetCategoryPlanned(categoryID uuid.UUID, amount decimal.Decimal) {
	if p.Planned == nil {
		p.Planned = map[uuid.UUID]decimal.Decimal{}
	}
	p.Planned[categoryID] = amount
}

// SetSubcategoryPlanned records a subcategory-level planned amount. An
// explicit zero counts as budgeted and switches the owning category to
// subcategory-sum mode.
func (p *BudgetPlan) SetSubcategoryPlanned(subcategoryID uuid.UUID, amount decimal.Decimal) {
	if p.SubcategoryPlanned == nil {
		p.SubcategoryPlanned = map[uuid.UUID]decimal.Decimal{}
	}
	p.SubcategoryPlanned[subcategoryID] = amount
}
