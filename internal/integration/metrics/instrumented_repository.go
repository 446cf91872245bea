package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// InstrumentedTransactionRepository records the outcome and latency of every call
// to the wrapped repository. A not-found result counts as a success.
type InstrumentedTransactionRepository struct {
	next     adapter.TransactionRepository
	recorder adapter.MetricsRecorder
}

var _ adapter.TransactionRepository = (*InstrumentedTransactionRepository)(nil)

// NewInstrumentedTransactionRepository wraps next.
func NewInstrumentedTransactionRepository(next adapter.TransactionRepository, recorder adapter.MetricsRecorder) *InstrumentedTransactionRepository {
	return &InstrumentedTransactionRepository{
		next:     next,
		recorder: recorder,
	}
}

func (r *InstrumentedTransactionRepository) List(ctx context.Context, filters entity.TransactionFilters) ([]*entity.Transaction, error) {
	start := time.Now()
	transactions, err := r.next.List(ctx, filters)
	r.record("list", err, start)
	return transactions, err
}

func (r *InstrumentedTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	start := time.Now()
	err := r.next.Create(ctx, transaction)
	r.record("create", err, start)
	return err
}

func (r *InstrumentedTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	start := time.Now()
	transaction, err := r.next.FindByID(ctx, id)
	r.record("find_by_id", err, start)
	return transaction, err
}

func (r *InstrumentedTransactionRepository) Update(ctx context.Context, id uuid.UUID, patch entity.TransactionPatch) (*entity.Transaction, error) {
	start := time.Now()
	transaction, err := r.next.Update(ctx, id, patch)
	r.record("update", err, start)
	return transaction, err
}

func (r *InstrumentedTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := r.next.Delete(ctx, id)
	r.record("delete", err, start)
	return err
}

func (r *InstrumentedTransactionRepository) record(operation string, err error, start time.Time) {
	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		err = nil
	}
	r.recorder.RecordOperation(operation, err, time.Since(start))
}
