// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/domain/entity"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// TransactionRepository defines the interface for transaction persistence
// operations. Implementations load and store transactions together with
// their split rows.
type TransactionRepository interface {
	// Create creates a new transaction, including its splits, in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction, with splits, by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByMonth retrieves all transactions whose date falls in the given
	// month, ordered by date.
	FindByMonth(ctx context.Context, monthKey valueobject.MonthKey) ([]*entity.Transaction, error)

	// FindByRuleAndMonth retrieves the transactions a recurring rule
	// materialized into the given month.
	FindByRuleAndMonth(ctx context.Context, ruleID uuid.UUID, monthKey valueobject.MonthKey) ([]*entity.Transaction, error)

	// Update updates an existing transaction and replaces its split rows.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction and its splits from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
