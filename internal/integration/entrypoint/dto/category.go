// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/batchflow/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=50"`
	Color         string   `json:"color,omitempty"`
	Type          string   `json:"type" binding:"required,oneof=expense income"`
	Subcategories []string `json:"subcategories,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color *string `json:"color,omitempty"`
}

// ReorderCategoryRequest represents the request body for moving a category
// within its type group.
type ReorderCategoryRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// SubcategoryRequest represents the request body for adding or renaming a
// subcategory.
type SubcategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// SubcategoryResponse represents a single subcategory in API responses.
type SubcategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Color         string                `json:"color"`
	Type          string                `json:"type"`
	SortOrder     int                   `json:"sort_order"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	subcategories := make([]SubcategoryResponse, len(category.Subcategories))
	for i, sub := range category.Subcategories {
		subcategories[i] = SubcategoryResponse{
			ID:       sub.ID.String(),
			Name:     sub.Name,
			Position: sub.Position,
		}
	}

	return CategoryResponse{
		ID:            category.ID.String(),
		Name:          category.Name,
		Color:         category.Color,
		Type:          string(category.Type),
		SortOrder:     category.SortOrder,
		Subcategories: subcategories,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}

// ToCategoryListResponse converts domain categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
