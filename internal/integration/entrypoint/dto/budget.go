// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/batchflow/backend/internal/application/usecase/budget"
)

// SetPlannedAmountRequest represents the request body for storing a planned
// amount at either level of the month's plan.
type SetPlannedAmountRequest struct {
	Level    string  `json:"level" binding:"required,oneof=category subcategory"`
	TargetID string  `json:"target_id" binding:"required,uuid"`
	Amount   float64 `json:"amount" binding:"gte=0"`
}

// CopyBudgetRequest represents the request body for copying a month's plan.
// An empty from_month copies from the nearest earlier set-up month.
type CopyBudgetRequest struct {
	FromMonth string `json:"from_month,omitempty"`
}

// CopyBudgetResponse reports which month the plan was copied from.
type CopyBudgetResponse struct {
	FromMonth string `json:"from_month"`
}

// SubcategoryProgressResponse represents one subcategory's derived state for
// the month.
type SubcategoryProgressResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Spent   string `json:"spent"`
	Planned string `json:"planned"`
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

// CategoryProgressResponse represents one category's derived state for the
// month. planned is the effective amount after subcategory roll-up;
// category_planned is the raw category-level entry.
type CategoryProgressResponse struct {
	ID              string                        `json:"id"`
	Name            string                        `json:"name"`
	Color           string                        `json:"color"`
	Type            string                        `json:"type"`
	Spent           string                        `json:"spent"`
	Planned         string                        `json:"planned"`
	CategoryPlanned string                        `json:"category_planned"`
	Percent         int                           `json:"percent"`
	Status          string                        `json:"status"`
	Subcategories   []SubcategoryProgressResponse `json:"subcategories,omitempty"`
}

// MonthOverviewResponse represents the full derived budget state for a month.
type MonthOverviewResponse struct {
	Month           string                     `json:"month"`
	Initialized     bool                       `json:"initialized"`
	Categories      []CategoryProgressResponse `json:"categories"`
	ActualIncome    string                     `json:"actual_income"`
	ActualExpenses  string                     `json:"actual_expenses"`
	PlannedIncome   string                     `json:"planned_income"`
	PlannedExpenses string                     `json:"planned_expenses"`
	Net             string                     `json:"net"`
	Unbudgeted      string                     `json:"unbudgeted"`
}

// ToMonthOverviewResponse converts a month overview output to its response DTO.
func ToMonthOverviewResponse(output *budget.GetMonthOverviewOutput) MonthOverviewResponse {
	categories := make([]CategoryProgressResponse, len(output.Categories))
	for i, category := range output.Categories {
		cr := CategoryProgressResponse{
			ID:              category.ID.String(),
			Name:            category.Name,
			Color:           category.Color,
			Type:            string(category.Type),
			Spent:           category.Spent.String(),
			Planned:         category.Planned.String(),
			CategoryPlanned: category.CategoryPlanned.String(),
			Percent:         category.Percent,
			Status:          string(category.Status),
		}
		for _, sub := range category.Subcategories {
			cr.Subcategories = append(cr.Subcategories, SubcategoryProgressResponse{
				ID:      sub.ID.String(),
				Name:    sub.Name,
				Spent:   sub.Spent.String(),
				Planned: sub.Planned.String(),
				Percent: sub.Percent,
				Status:  string(sub.Status),
			})
		}
		categories[i] = cr
	}

	return MonthOverviewResponse{
		Month:           output.MonthKey.String(),
		Initialized:     output.Initialized,
		Categories:      categories,
		ActualIncome:    output.ActualIncome.String(),
		ActualExpenses:  output.ActualExpenses.String(),
		PlannedIncome:   output.PlannedIncome.String(),
		PlannedExpenses: output.PlannedExpenses.String(),
		Net:             output.Net.String(),
		Unbudgeted:      output.Unbudgeted.String(),
	}
}
