package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/application/adapter"
)

// DeleteRuleInput represents the input for recurring-rule deletion.
type DeleteRuleInput struct {
	RuleID uuid.UUID
}

// DeleteRuleUseCase handles recurring-rule deletion logic. Transactions the
// rule already generated are kept; they simply stop pointing at a live rule.
type DeleteRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewDeleteRuleUseCase creates a new DeleteRuleUseCase instance.
func NewDeleteRuleUseCase(ruleRepo adapter.RecurringRuleRepository) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the recurring-rule deletion.
func (uc *DeleteRuleUseCase) Execute(ctx context.Context, input DeleteRuleInput) error {
	if _, err := uc.ruleRepo.FindByID(ctx, input.RuleID); err != nil {
		return err
	}

	if err := uc.ruleRepo.Delete(ctx, input.RuleID); err != nil {
		return fmt.Errorf("failed to delete recurring rule: %w", err)
	}

	return nil
}
