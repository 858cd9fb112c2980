// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Color     string    `gorm:"type:varchar(7);default:'#6366F1'"`
	Type      string    `gorm:"type:varchar(10);not null;index"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Loaded with Preload; ordered by position.
	Subcategories []SubcategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubcategoryModel represents the subcategories table in the database.
type SubcategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(50);not null"`
	Position   int       `gorm:"not null;default:0"`
}

// TableName returns the table name for the SubcategoryModel.
func (SubcategoryModel) TableName() string {
	return "subcategories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	subcategories := make([]entity.Subcategory, len(m.Subcategories))
	for i, sub := range m.Subcategories {
		subcategories[i] = entity.Subcategory{
			ID:       sub.ID,
			Name:     sub.Name,
			Position: sub.Position,
		}
	}

	return &entity.Category{
		ID:            m.ID,
		Name:          m.Name,
		Color:         m.Color,
		Type:          entity.CategoryType(m.Type),
		SortOrder:     m.SortOrder,
		Subcategories: subcategories,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	subcategories := make([]SubcategoryModel, len(category.Subcategories))
	for i, sub := range category.Subcategories {
		subcategories[i] = SubcategoryModel{
			ID:         sub.ID,
			CategoryID: category.ID,
			Name:       sub.Name,
			Position:   sub.Position,
		}
	}

	return &CategoryModel{
		ID:            category.ID,
		Name:          category.Name,
		Color:         category.Color,
		Type:          string(category.Type),
		SortOrder:     category.SortOrder,
		Subcategories: subcategories,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}
