// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	"github.com/batchflow/backend/internal/domain/valueobject"
	"github.com/batchflow/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface. A
// month's plan is stored as one marker row plus one entry row per planned
// amount, and reconstituted into the two maps the aggregator consumes.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// FindByMonth retrieves the budget plan for a month. An uninitialized month
// yields an empty plan and false, never an error.
func (r *budgetRepository) FindByMonth(ctx context.Context, monthKey valueobject.MonthKey) (*entity.BudgetPlan, bool, error) {
	var monthModel model.BudgetMonthModel
	result := r.db.WithContext(ctx).Where("month_key = ?", string(monthKey)).First(&monthModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.NewBudgetPlan(monthKey), false, nil
		}
		return nil, false, result.Error
	}

	var entryModels []model.BudgetEntryModel
	result = r.db.WithContext(ctx).Where("month_key = ?", string(monthKey)).Find(&entryModels)
	if result.Error != nil {
		return nil, false, result.Error
	}

	plan := entity.NewBudgetPlan(monthKey)
	for _, entry := range entryModels {
		switch {
		case entry.SubcategoryID != nil:
			plan.SetSubcategoryPlanned(*entry.SubcategoryID, entry.Amount)
		case entry.CategoryID != nil:
			plan.SetCategoryPlanned(*entry.CategoryID, entry.Amount)
		}
	}
	return plan, true, nil
}

// EnsureMonth marks a month as explicitly set up. Idempotent.
func (r *budgetRepository) EnsureMonth(ctx context.Context, monthKey valueobject.MonthKey) error {
	monthModel := model.BudgetMonthModel{
		MonthKey:  string(monthKey),
		CreatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).
		Where("month_key = ?", string(monthKey)).
		FirstOrCreate(&monthModel)
	return result.Error
}

// UpsertCategoryAmount stores a category-level planned amount for a month.
func (r *budgetRepository) UpsertCategoryAmount(ctx context.Context, monthKey valueobject.MonthKey, categoryID uuid.UUID, amount decimal.Decimal) error {
	return r.upsertEntry(ctx, monthKey, &categoryID, nil, amount)
}

// UpsertSubcategoryAmount stores a subcategory-level planned amount for a month.
func (r *budgetRepository) UpsertSubcategoryAmount(ctx context.Context, monthKey valueobject.MonthKey, subcategoryID uuid.UUID, amount decimal.Decimal) error {
	return r.upsertEntry(ctx, monthKey, nil, &subcategoryID, amount)
}

// ListMonths returns the set-up months in chronological order. Month keys
// sort lexicographically in date order, so the database handles the ordering.
func (r *budgetRepository) ListMonths(ctx context.Context) ([]valueobject.MonthKey, error) {
	var monthModels []model.BudgetMonthModel
	result := r.db.WithContext(ctx).Order("month_key ASC").Find(&monthModels)
	if result.Error != nil {
		return nil, result.Error
	}

	months := make([]valueobject.MonthKey, len(monthModels))
	for i, m := range monthModels {
		months[i] = valueobject.MonthKey(m.MonthKey)
	}
	return months, nil
}

// upsertEntry updates the existing entry row for the target, or inserts one.
// Exactly one of categoryID and subcategoryID is set.
func (r *budgetRepository) upsertEntry(ctx context.Context, monthKey valueobject.MonthKey, categoryID, subcategoryID *uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("month_key = ?", string(monthKey))
		if categoryID != nil {
			query = query.Where("category_id = ?", *categoryID)
		} else {
			query = query.Where("subcategory_id = ?", *subcategoryID)
		}

		now := time.Now().UTC()
		var entry model.BudgetEntryModel
		err := query.First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = model.BudgetEntryModel{
				ID:            uuid.New(),
				MonthKey:      string(monthKey),
				CategoryID:    categoryID,
				SubcategoryID: subcategoryID,
				Amount:        amount,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			return tx.Create(&entry).Error
		}
		if err != nil {
			return err
		}

		entry.Amount = amount
		entry.UpdatedAt = now
		return tx.Save(&entry).Error
	})
}
