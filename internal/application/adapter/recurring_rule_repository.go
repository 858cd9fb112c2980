// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/domain/entity"
)

// RecurringRuleRepository defines the interface for recurring-rule
// persistence operations.
type RecurringRuleRepository interface {
	// Create creates a new recurring rule in the database.
	Create(ctx context.Context, rule *entity.RecurringRule) error

	// FindByID retrieves a recurring rule by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringRule, error)

	// FindAll retrieves all recurring rules ordered by label.
	FindAll(ctx context.Context) ([]*entity.RecurringRule, error)

	// FindActive retrieves all rules that are not paused.
	FindActive(ctx context.Context) ([]*entity.RecurringRule, error)

	// Update updates an existing recurring rule.
	Update(ctx context.Context, rule *entity.RecurringRule) error

	// Delete removes a recurring rule. Transactions the rule previously
	// materialized are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
