// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/batchflow/backend/internal/application/usecase/dashboard"
)

// MonthSummaryResponse represents one month's rollup in API responses.
type MonthSummaryResponse struct {
	Month            string `json:"month"`
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	PlannedExpenses  string `json:"planned_expenses"`
	Net              string `json:"net"`
	TransactionCount int    `json:"transaction_count"`
}

// MonthlySummaryResponse represents the response for the summary window.
type MonthlySummaryResponse struct {
	Months []MonthSummaryResponse `json:"months"`
}

// ToMonthlySummaryResponse converts a summary output to its response DTO.
func ToMonthlySummaryResponse(output *dashboard.GetMonthlySummaryOutput) MonthlySummaryResponse {
	months := make([]MonthSummaryResponse, len(output.Months))
	for i, month := range output.Months {
		months[i] = MonthSummaryResponse{
			Month:            month.MonthKey,
			Income:           month.Income.String(),
			Expenses:         month.Expenses.String(),
			PlannedExpenses:  month.PlannedExpenses.String(),
			Net:              month.Net.String(),
			TransactionCount: month.TransactionCount,
		}
	}
	return MonthlySummaryResponse{
		Months: months,
	}
}
