package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
)

type mockTransactionRepository struct {
	mock.Mock
}

func (m *mockTransactionRepository) List(ctx context.Context, filters entity.TransactionFilters) ([]*entity.Transaction, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *mockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *mockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *mockTransactionRepository) Update(ctx context.Context, id uuid.UUID, patch entity.TransactionPatch) (*entity.Transaction, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *mockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockIdempotencyStore struct {
	mock.Mock
}

func (m *mockIdempotencyStore) Claim(ctx context.Context, key string) (adapter.IdempotencyState, uuid.UUID, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(adapter.IdempotencyState), args.Get(1).(uuid.UUID), args.Error(2)
}

func (m *mockIdempotencyStore) Complete(ctx context.Context, key string, transactionID uuid.UUID) error {
	args := m.Called(ctx, key, transactionID)
	return args.Error(0)
}

func (m *mockIdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
