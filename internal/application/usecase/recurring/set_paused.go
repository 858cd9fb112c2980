package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/application/adapter"
	"github.com/batchflow/backend/internal/domain/entity"
)

// SetPausedInput represents the input for pausing or resuming a rule.
type SetPausedInput struct {
	RuleID uuid.UUID
	Paused bool
}

// SetPausedOutput represents the output of the pause toggle.
type SetPausedOutput struct {
	Rule *entity.RecurringRule
}

// SetPausedUseCase pauses or resumes a recurring rule. A paused rule keeps
// its schedule but is skipped by materialization and reports no upcoming
// occurrence.
type SetPausedUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewSetPausedUseCase creates a new SetPausedUseCase instance.
func NewSetPausedUseCase(ruleRepo adapter.RecurringRuleRepository) *SetPausedUseCase {
	return &SetPausedUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute toggles the rule's paused state. Setting the current state again
// is a no-op.
func (uc *SetPausedUseCase) Execute(ctx context.Context, input SetPausedInput) (*SetPausedOutput, error) {
	rule, err := uc.ruleRepo.FindByID(ctx, input.RuleID)
	if err != nil {
		return nil, err
	}

	if rule.IsPaused == input.Paused {
		return &SetPausedOutput{Rule: rule}, nil
	}

	rule.IsPaused = input.Paused
	rule.UpdatedAt = time.Now().UTC()

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to update recurring rule: %w", err)
	}

	return &SetPausedOutput{
		Rule: rule,
	}, nil
}
