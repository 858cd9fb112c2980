// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/integration/persistence/model"
)

// recurringRuleRepository implements the adapter.RecurringRuleRepository interface.
type recurringRuleRepository struct {
	db *gorm.DB
}

// NewRecurringRuleRepository creates a new recurring-rule repository instance.
func NewRecurringRuleRepository(db *gorm.DB) adapter.RecurringRuleRepository {
	return &recurringRuleRepository{
		db: db,
	}
}

// Create creates a new recurring rule in the database.
func (r *recurringRuleRepository) Create(ctx context.Context, rule *entity.RecurringRule) error {
	ruleModel := model.RecurringRuleFromEntity(rule)
	result := r.db.WithContext(ctx).Create(ruleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring rule by its ID.
func (r *recurringRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringRule, error) {
	var ruleModel model.RecurringRuleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&ruleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRuleNotFound
		}
		return nil, result.Error
	}
	return ruleModel.ToEntity(), nil
}

// FindAll retrieves all recurring rules ordered by label.
func (r *recurringRuleRepository) FindAll(ctx context.Context) ([]*entity.RecurringRule, error) {
	var ruleModels []model.RecurringRuleModel
	result := r.db.WithContext(ctx).Order("label ASC").Find(&ruleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRuleEntities(ruleModels), nil
}

// FindActive retrieves all rules that are not paused.
func (r *recurringRuleRepository) FindActive(ctx context.Context) ([]*entity.RecurringRule, error) {
	var ruleModels []model.RecurringRuleModel
	result := r.db.WithContext(ctx).
		Where("is_paused = ?", false).
		Order("label ASC").
		Find(&ruleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRuleEntities(ruleModels), nil
}

// Update updates an existing recurring rule.
func (r *recurringRuleRepository) Update(ctx context.Context, rule *entity.RecurringRule) error {
	ruleModel := model.RecurringRuleFromEntity(rule)
	result := r.db.WithContext(ctx).Save(ruleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a recurring rule. Transactions the rule previously
// materialized keep their rule_id and are left untouched.
func (r *recurringRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringRuleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toRuleEntities(models []model.RecurringRuleModel) []*entity.RecurringRule {
	rules := make([]*entity.RecurringRule, len(models))
	for i, rm := range models {
		rules[i] = rm.ToEntity()
	}
	return rules
}
