// Package redisstore implements the idempotency store on Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/wallet/internal/application/adapter"
)

const (
	keyPrefix     = "idempotency:transaction:"
	pendingMarker = "pending"
)

// IdempotencyStore implements adapter.IdempotencyStore.
// A key holds "pending" while its request runs and the transaction ID once it completes.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ adapter.IdempotencyStore = (*IdempotencyStore)(nil)

// NewIdempotencyStore creates a new Redis-backed idempotency store.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		ttl:    ttl,
	}
}

// Claim reserves key with SETNX, or reports the state of the request that already holds it.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (adapter.IdempotencyState, uuid.UUID, error) {
	redisKey := keyPrefix + key

	claimed, err := s.client.SetNX(ctx, redisKey, pendingMarker, s.ttl).Result()
	if err != nil {
		return adapter.IdempotencyPending, uuid.Nil, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	if claimed {
		return adapter.IdempotencyClaimed, uuid.Nil, nil
	}

	value, err := s.client.Get(ctx, redisKey).Result()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET; the caller may retry.
		return adapter.IdempotencyPending, uuid.Nil, nil
	}
	if err != nil {
		return adapter.IdempotencyPending, uuid.Nil, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	if value == pendingMarker {
		return adapter.IdempotencyPending, uuid.Nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return adapter.IdempotencyPending, uuid.Nil, fmt.Errorf("corrupt idempotency record %q: %w", key, err)
	}
	return adapter.IdempotencyCompleted, id, nil
}

// Complete binds key to the transaction it produced.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, transactionID uuid.UUID) error {
	if err := s.client.Set(ctx, keyPrefix+key, transactionID.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

// Release drops key so the request can be retried.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
