// Package budget implements the pure aggregation functions that turn raw
// category, transaction and budget-plan records into derived monetary facts:
// spent-vs-planned rollups, progress classification and the zero-based
// unbudgeted balance. All functions are total over well-formed input, never
// mutate their arguments and perform no I/O, so they are safe to call
// concurrently as long as callers snapshot their collections first.
package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/domain/entity"
)

// ProgressStatus classifies spending against a planned amount.
type ProgressStatus string

const (
	// ProgressNone means no plan has been set for the target.
	ProgressNone ProgressStatus = "none"
	// ProgressGood means spending is below the warning threshold.
	ProgressGood ProgressStatus = "good"
	// ProgressWarning means spending reached 80% of the plan.
	ProgressWarning ProgressStatus = "warning"
	// ProgressOver means spending reached or exceeded the plan.
	ProgressOver ProgressStatus = "over"
)

// warningThresholdPct is the percent of plan at which status turns to warning.
const warningThresholdPct = 80

var hundred = decimal.NewFromInt(100)

// CategorySpent returns the total amount assigned to the category across the
// given transactions. Flat assignments contribute the full transaction
// amount; split transactions contribute only the split rows targeting the
// category, so callers never need to pre-flatten splits.
func CategorySpent(transactions []*entity.Transaction, categoryID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		switch t.Kind() {
		case entity.TransactionKindFlat:
			if t.CategoryID != nil && *t.CategoryID == categoryID {
				total = total.Add(t.Amount)
			}
		case entity.TransactionKindSplit:
			for _, s := range t.Splits {
				if s.CategoryID == categoryID {
					total = total.Add(s.Amount)
				}
			}
		}
	}
	return total
}

// SubcategorySpent returns the total amount assigned to the subcategory,
// counting flat assignments and split rows alike.
func SubcategorySpent(transactions []*entity.Transaction, subcategoryID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		switch t.Kind() {
		case entity.TransactionKindFlat:
			if t.SubcategoryID != nil && *t.SubcategoryID == subcategoryID {
				total = total.Add(t.Amount)
			}
		case entity.TransactionKindSplit:
			for _, s := range t.Splits {
				if s.SubcategoryID != nil && *s.SubcategoryID == subcategoryID {
					total = total.Add(s.Amount)
				}
			}
		}
	}
	return total
}

// CategoryPlanned returns the category-level planned amount for the month,
// defaulting to zero when the month or the category has no entry.
func CategoryPlanned(plan *entity.BudgetPlan, categoryID uuid.UUID) decimal.Decimal {
	if plan == nil {
		return decimal.Zero
	}
	if amount, ok := plan.Planned[categoryID]; ok {
		return amount
	}
	return decimal.Zero
}

// SubcategoryPlanned returns the subcategory-level planned amount for the
// month, defaulting to zero.
func SubcategoryPlanned(plan *entity.BudgetPlan, subcategoryID uuid.UUID) decimal.Decimal {
	if plan == nil {
		return decimal.Zero
	}
	if amount, ok := plan.SubcategoryPlanned[subcategoryID]; ok {
		return amount
	}
	return decimal.Zero
}

// CategoryEffectivePlanned returns the planned amount that counts for a
// category after subcategory roll-up:
//
//   - categories without subcategories use the category-level amount;
//   - once any subcategory has an explicit entry (an explicit zero counts),
//     the effective amount is the sum over all subcategories, missing
//     entries contributing zero;
//   - categories whose subcategories were never budgeted fall back to the
//     category-level amount, so data saved before subcategory budgeting
//     existed keeps working.
//
// The roll-up avoids double-counting once a user migrates to per-subcategory
// planning; any stale category-level value is ignored from that point on.
func CategoryEffectivePlanned(category *entity.Category, plan *entity.BudgetPlan) decimal.Decimal {
	if !category.HasSubcategories() {
		return CategoryPlanned(plan, category.ID)
	}

	budgeted := false
	if plan != nil {
		for _, sub := range category.Subcategories {
			if _, ok := plan.SubcategoryPlanned[sub.ID]; ok {
				budgeted = true
				break
			}
		}
	}
	if budgeted {
		total := decimal.Zero
		for _, sub := range category.Subcategories {
			total = total.Add(SubcategoryPlanned(plan, sub.ID))
		}
		return total
	}

	// Backward compat: old data stored amounts at the category level.
	return CategoryPlanned(plan, category.ID)
}

// ProgressPercent returns spent as a whole percent of planned, rounded and
// clamped to [0, 100]. A zero plan yields zero; numeric overspend beyond the
// plan is reported separately, not through the percentage.
func ProgressPercent(spent, planned decimal.Decimal) int {
	if planned.IsZero() {
		return 0
	}
	pct := spent.Mul(hundred).Div(planned).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}

// ClassifyProgress classifies spent against planned. The thresholds are the
// same for income and expense categories: at or above the plan is over, at
// or above 80% of the plan is warning, anything below is good. No plan set
// yields none.
func ClassifyProgress(spent, planned decimal.Decimal) ProgressStatus {
	if planned.IsZero() {
		return ProgressNone
	}
	if spent.GreaterThanOrEqual(planned) {
		return ProgressOver
	}
	if spent.Mul(hundred).GreaterThanOrEqual(planned.Mul(decimal.NewFromInt(warningThresholdPct))) {
		return ProgressWarning
	}
	return ProgressGood
}

// TotalByType sums transaction amounts of the given type. The type is the
// transaction's own declared type; split rows are not consulted.
func TotalByType(transactions []*entity.Transaction, transactionType entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalPlannedByType sums the effective planned amounts over categories of
// the given type, so subcategory budgets roll up correctly.
func TotalPlannedByType(categories []*entity.Category, plan *entity.BudgetPlan, categoryType entity.CategoryType) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		if c.Type == categoryType {
			total = total.Add(CategoryEffectivePlanned(c, plan))
		}
	}
	return total
}

// UnbudgetedAmount returns planned income minus planned expenses. In a
// zero-based budget a fully planned month yields exactly zero; positive
// means income not yet assigned, negative means allocation beyond income.
func UnbudgetedAmount(categories []*entity.Category, plan *entity.BudgetPlan) decimal.Decimal {
	plannedIncome := TotalPlannedByType(categories, plan, entity.CategoryTypeIncome)
	plannedExpenses := TotalPlannedByType(categories, plan, entity.CategoryTypeExpense)
	return plannedIncome.Sub(plannedExpenses)
}
