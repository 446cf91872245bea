// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// IdempotencyState is the state of an idempotency key after a claim attempt.
type IdempotencyState int

const (
	// IdempotencyClaimed means the caller now owns the key and must Complete or Release it.
	IdempotencyClaimed IdempotencyState = iota
	// IdempotencyPending means another request holds the key and has not finished.
	IdempotencyPending
	// IdempotencyCompleted means the key already produced a transaction.
	IdempotencyCompleted
)

// IdempotencyStore records client-supplied keys so a retried create does not
// produce a second transaction.
type IdempotencyStore interface {
	// Claim atomically reserves key. When the key already completed, the ID of the
	// transaction it produced is returned.
	Claim(ctx context.Context, key string) (IdempotencyState, uuid.UUID, error)

	// Complete binds a claimed key to the transaction it produced.
	Complete(ctx context.Context, key string, transactionID uuid.UUID) error

	// Release drops a claimed key so the request can be retried.
	Release(ctx context.Context, key string) error
}
