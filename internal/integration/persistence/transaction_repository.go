// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/domain/valueobject"
	"github.com/batchflow/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction, including its splits, in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction, with splits, by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByMonth retrieves all transactions whose date falls in the given month,
// ordered by date.
func (r *transactionRepository) FindByMonth(ctx context.Context, monthKey valueobject.MonthKey) ([]*entity.Transaction, error) {
	from, to := monthBounds(monthKey)

	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC, created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toTransactionEntities(transactionModels), nil
}

// FindByRuleAndMonth retrieves the transactions a recurring rule materialized
// into the given month.
func (r *transactionRepository) FindByRuleAndMonth(ctx context.Context, ruleID uuid.UUID, monthKey valueobject.MonthKey) ([]*entity.Transaction, error) {
	from, to := monthBounds(monthKey)

	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Where("rule_id = ? AND date >= ? AND date < ?", ruleID, from, to).
		Order("date ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toTransactionEntities(transactionModels), nil
}

// Update updates an existing transaction and replaces its split rows.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", transaction.ID).
			Delete(&model.TransactionSplitModel{}).Error; err != nil {
			return err
		}
		return tx.Save(transactionModel).Error
	})
}

// Delete removes a transaction and its splits from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).
			Delete(&model.TransactionSplitModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TransactionModel{}, "id = ?", id).Error
	})
}

// monthBounds returns the half-open [from, to) range covering the month in
// date-column comparisons. Stored dates carry no time of day, so the range
// starts at midnight.
func monthBounds(monthKey valueobject.MonthKey) (time.Time, time.Time) {
	from := time.Date(monthKey.Year(), monthKey.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func toTransactionEntities(models []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(models))
	for i, tm := range models {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
