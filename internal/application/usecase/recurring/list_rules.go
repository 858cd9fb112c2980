package recurring

import (
	"context"
	"fmt"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
	"github.com/batchflow/backend/internal/domain/recurrence"
)

// RuleWithSchedule pairs a rule with its computed upcoming occurrence.
type RuleWithSchedule struct {
	Rule           *entity.RecurringRule
	NextOccurrence string // YYYY-MM-DD; empty when no upcoming occurrence exists
}

// ListRulesOutput represents the output of recurring-rule listing.
type ListRulesOutput struct {
	Rules []RuleWithSchedule
}

// ListRulesUseCase handles recurring-rule listing logic.
type ListRulesUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
	clock    adapter.Clock
}

// NewListRulesUseCase creates a new ListRulesUseCase instance.
func NewListRulesUseCase(ruleRepo adapter.RecurringRuleRepository, clock adapter.Clock) *ListRulesUseCase {
	return &ListRulesUseCase{
		ruleRepo: ruleRepo,
		clock:    clock,
	}
}

// Execute lists all recurring rules with their next occurrence on or after
// today. Paused and ended rules report no upcoming occurrence.
func (uc *ListRulesUseCase) Execute(ctx context.Context) (*ListRulesOutput, error) {
	rules, err := uc.ruleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring rules: %w", err)
	}

	today := uc.clock.Now()
	result := make([]RuleWithSchedule, 0, len(rules))
	for _, rule := range rules {
		entry := RuleWithSchedule{Rule: rule}
		if !rule.IsPaused {
			if next, ok := recurrence.NextOccurrence(rule, today); ok {
				entry.NextOccurrence = next
			}
		}
		result = append(result, entry)
	}

	return &ListRulesOutput{
		Rules: result,
	}, nil
}
