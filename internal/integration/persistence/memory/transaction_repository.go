// Package memory implements repository interfaces on an in-process collection.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// transactionRepository implements the adapter.TransactionRepository interface.
// Records are copied on the way in and out so callers never share state with the store.
type transactionRepository struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*entity.Transaction
}

// NewTransactionRepository creates a new in-memory transaction repository instance.
func NewTransactionRepository() adapter.TransactionRepository {
	return &transactionRepository{
		transactions: make(map[uuid.UUID]*entity.Transaction),
	}
}

// List returns the transactions matching filters, most recent first.
func (r *transactionRepository) List(ctx context.Context, filters entity.TransactionFilters) ([]*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := make([]*entity.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		if filters.Matches(t) {
			result = append(result, t.Clone())
		}
	}
	r.mu.RUnlock()

	entity.SortTransactions(result)
	return result, nil
}

// Create stores a new transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !transaction.HasConsistentSign() {
		return domainerror.ErrInconsistentSign
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions[transaction.ID] = transaction.Clone()
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return t.Clone(), nil
}

// Update merges patch into the stored transaction.
func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, patch entity.TransactionPatch) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}

	updated := current.Clone()
	updated.Apply(patch)
	if !updated.HasConsistentSign() {
		return nil, domainerror.ErrInconsistentSign
	}
	r.transactions[id] = updated
	return updated.Clone(), nil
}

// Delete removes a transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	return nil
}
