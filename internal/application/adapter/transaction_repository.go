// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// Implementations are the sole owners of the transaction collection. Every method is
// atomic with respect to the others: readers observe a record either fully before or
// fully after a concurrent write.
type TransactionRepository interface {
	// List returns the transactions matching filters, most recent date first.
	// Ties on date are ordered by CreatedAt descending, then by ID ascending.
	List(ctx context.Context, filters entity.TransactionFilters) ([]*entity.Transaction, error)

	// Create stores a transaction whose ID and CreatedAt are already assigned.
	// The amount is stored as given; sign normalization belongs to the caller.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	// Returns domainerror.ErrTransactionNotFound if absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// Update merges patch into the stored transaction and returns the result.
	// Returns domainerror.ErrTransactionNotFound if absent.
	Update(ctx context.Context, id uuid.UUID, patch entity.TransactionPatch) (*entity.Transaction, error)

	// Delete removes a transaction permanently.
	// Returns domainerror.ErrTransactionNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
