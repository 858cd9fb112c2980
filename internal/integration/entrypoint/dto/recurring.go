// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/batchflow/backend/internal/application/usecase/recurring"
	"github.com/batchflow/backend/internal/domain/entity"
)

// CreateRuleRequest represents the request body for recurring-rule creation.
type CreateRuleRequest struct {
	Label         string  `json:"label" binding:"required,min=1,max=100"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Frequency     string  `json:"frequency" binding:"required,oneof=weekly biweekly monthly yearly"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date,omitempty"`
	CategoryID    string  `json:"category_id" binding:"required,uuid"`
	SubcategoryID *string `json:"subcategory_id,omitempty" binding:"omitempty,uuid"`
	Merchant      string  `json:"merchant,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// UpdateRuleRequest represents the request body for recurring-rule update.
// Absent fields are left unchanged; an explicit empty end_date clears it.
type UpdateRuleRequest struct {
	Label         *string  `json:"label,omitempty" binding:"omitempty,min=1,max=100"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Frequency     *string  `json:"frequency,omitempty" binding:"omitempty,oneof=weekly biweekly monthly yearly"`
	StartDate     *string  `json:"start_date,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	SubcategoryID *string  `json:"subcategory_id,omitempty" binding:"omitempty,uuid"`
	Merchant      *string  `json:"merchant,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// SetPausedRequest represents the request body for pausing or resuming a rule.
type SetPausedRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

// RuleResponse represents a single recurring rule in API responses.
type RuleResponse struct {
	ID             string    `json:"id"`
	Label          string    `json:"label"`
	Amount         string    `json:"amount"`
	Type           string    `json:"type"`
	Frequency      string    `json:"frequency"`
	FrequencyLabel string    `json:"frequency_label"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date,omitempty"`
	CategoryID     string    `json:"category_id"`
	SubcategoryID  *string   `json:"subcategory_id,omitempty"`
	Merchant       string    `json:"merchant,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	IsPaused       bool      `json:"is_paused"`
	NextOccurrence string    `json:"next_occurrence,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RuleListResponse represents the response for listing recurring rules.
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// MaterializeMonthResponse reports the outcome of materializing a month.
type MaterializeMonthResponse struct {
	Created []TransactionResponse `json:"created"`
	Skipped int                   `json:"skipped"`
}

// ToRuleResponse converts a domain RecurringRule entity to a RuleResponse DTO.
func ToRuleResponse(rule *entity.RecurringRule) RuleResponse {
	response := RuleResponse{
		ID:             rule.ID.String(),
		Label:          rule.Label,
		Amount:         rule.Amount.String(),
		Type:           string(rule.Type),
		Frequency:      string(rule.Frequency),
		FrequencyLabel: entity.FrequencyLabels[rule.Frequency],
		StartDate:      rule.StartDate.Format("2006-01-02"),
		CategoryID:     rule.CategoryID.String(),
		SubcategoryID:  uuidString(rule.SubcategoryID),
		Merchant:       rule.Merchant,
		Notes:          rule.Notes,
		IsPaused:       rule.IsPaused,
		CreatedAt:      rule.CreatedAt,
		UpdatedAt:      rule.UpdatedAt,
	}
	if rule.EndDate != nil {
		endDate := rule.EndDate.Format("2006-01-02")
		response.EndDate = &endDate
	}
	return response
}

// ToRuleListResponse converts scheduled rules to a RuleListResponse.
func ToRuleListResponse(rules []recurring.RuleWithSchedule) RuleListResponse {
	responses := make([]RuleResponse, len(rules))
	for i, entry := range rules {
		responses[i] = ToRuleResponse(entry.Rule)
		responses[i].NextOccurrence = entry.NextOccurrence
	}
	return RuleListResponse{
		Rules: responses,
	}
}

// ToMaterializeMonthResponse converts a materialization output to its
// response DTO.
func ToMaterializeMonthResponse(output *recurring.MaterializeMonthOutput) MaterializeMonthResponse {
	response := MaterializeMonthResponse{
		Created: make([]TransactionResponse, len(output.Created)),
		Skipped: output.Skipped,
	}
	for i, transaction := range output.Created {
		response.Created[i] = ToTransactionResponse(transaction)
	}
	return response
}
