// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring rule fires.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// FrequencyLabels maps frequencies to their display labels.
var FrequencyLabels = map[Frequency]string{
	FrequencyWeekly:   "Weekly",
	FrequencyBiweekly: "Biweekly",
	FrequencyMonthly:  "Monthly",
	FrequencyYearly:   "Yearly",
}

// RecurringRule describes a schedule that generates recurring transaction
// occurrences. The rule itself never creates transactions; the recurrence
// engine projects occurrence dates and the materialization use case decides
// which transactions to create. Deleting a rule does not retroactively alter
// transactions it previously generated.
type RecurringRule struct {
	ID            uuid.UUID
	Label         string
	Amount        decimal.Decimal
	Type          TransactionType
	Frequency     Frequency
	StartDate     time.Time  // Normalized to noon UTC
	EndDate       *time.Time // Inclusive bound; nil means the rule never ends
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Merchant      string
	Notes         string
	IsPaused      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecurringRule creates a new RecurringRule entity.
func NewRecurringRule(
	label string,
	amount decimal.Decimal,
	transactionType TransactionType,
	frequency Frequency,
	startDate time.Time,
	endDate *time.Time,
	categoryID uuid.UUID,
	subcategoryID *uuid.UUID,
	merchant string,
	notes string,
) *RecurringRule {
	now := time.Now().UTC()

	return &RecurringRule{
		ID:            uuid.New(),
		Label:         label,
		Amount:        amount,
		Type:          transactionType,
		Frequency:     frequency,
		StartDate:     startDate,
		EndDate:       endDate,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Merchant:      merchant,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
