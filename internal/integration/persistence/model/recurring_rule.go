// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/domain/entity"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// RecurringRuleModel represents the recurring_rules table in the database.
type RecurringRuleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Label         string          `gorm:"type:varchar(100);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type          string          `gorm:"type:varchar(10);not null"`
	Frequency     string          `gorm:"type:varchar(10);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       *time.Time      `gorm:"type:date"` // Inclusive; null means the rule never ends
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubcategoryID *uuid.UUID      `gorm:"type:uuid"`
	Merchant      string          `gorm:"type:varchar(255)"`
	Notes         string          `gorm:"type:text"`
	IsPaused      bool            `gorm:"not null;default:false;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringRuleModel.
func (RecurringRuleModel) TableName() string {
	return "recurring_rules"
}

// ToEntity converts a RecurringRuleModel to a domain RecurringRule entity.
// Date columns drop the time of day; the noon anchor the calendar math relies
// on is restored here.
func (m *RecurringRuleModel) ToEntity() *entity.RecurringRule {
	var endDate *time.Time
	if m.EndDate != nil {
		d := valueobject.Noon(*m.EndDate)
		endDate = &d
	}

	return &entity.RecurringRule{
		ID:            m.ID,
		Label:         m.Label,
		Amount:        m.Amount,
		Type:          entity.TransactionType(m.Type),
		Frequency:     entity.Frequency(m.Frequency),
		StartDate:     valueobject.Noon(m.StartDate),
		EndDate:       endDate,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		Merchant:      m.Merchant,
		Notes:         m.Notes,
		IsPaused:      m.IsPaused,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RecurringRuleFromEntity creates a RecurringRuleModel from a domain RecurringRule entity.
func RecurringRuleFromEntity(rule *entity.RecurringRule) *RecurringRuleModel {
	return &RecurringRuleModel{
		ID:            rule.ID,
		Label:         rule.Label,
		Amount:        rule.Amount,
		Type:          string(rule.Type),
		Frequency:     string(rule.Frequency),
		StartDate:     rule.StartDate,
		EndDate:       rule.EndDate,
		CategoryID:    rule.CategoryID,
		SubcategoryID: rule.SubcategoryID,
		Merchant:      rule.Merchant,
		Notes:         rule.Notes,
		IsPaused:      rule.IsPaused,
		CreatedAt:     rule.CreatedAt,
		UpdatedAt:     rule.UpdatedAt,
	}
}
