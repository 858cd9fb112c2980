// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// Category represents a budgeting category in the BatchFlow system.
// Transactions inherit the category's type; the type never changes once
// transactions reference the category.
type Category struct {
	ID            uuid.UUID
	Name          string
	Color         string
	Type          CategoryType
	SortOrder     int
	Subcategories []Subcategory // Ordered, user-controlled
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Subcategory represents a named subdivision of a category. A subcategory
// belongs to exactly one category, which exclusively owns its list.
type Subcategory struct {
	ID       uuid.UUID
	Name     string
	Position int
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color should be applied in the Application layer
// (UseCase) before calling this constructor.
func NewCategory(name, color string, categoryType CategoryType, sortOrder int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:            uuid.New(),
		Name:          name,
		Color:         color,
		Type:          categoryType,
		SortOrder:     sortOrder,
		Subcategories: []Subcategory{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewSubcategory creates a new Subcategory entity.
func NewSubcategory(name string, position int) Subcategory {
	return Subcategory{
		ID:       uuid.New(),
		Name:     name,
		Position: position,
	}
}

// HasSubcategories reports whether the category has at least one subcategory.
func (c *Category) HasSubcategories() bool {
	return len(c.Subcategories) > 0
}

// SubcategoryByID returns the subcategory with the given ID, or nil.
func (c *Category) SubcategoryByID(id uuid.UUID) *Subcategory {
	for i := range c.Subcategories {
		if c.Subcategories[i].ID == id {
			return &c.Subcategories[i]
		}
	}
	return nil
}
