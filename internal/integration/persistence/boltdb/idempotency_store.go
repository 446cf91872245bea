package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/finance-tracker/wallet/internal/application/adapter"
)

var idempotenceBucketName = []byte("idempotence")

type idempotenceRecord struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Completed     bool      `json:"completed"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// IdempotencyStore implements adapter.IdempotencyStore in a bbolt bucket.
// Expired keys are treated as absent and overwritten on the next claim.
type IdempotencyStore struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time
}

var _ adapter.IdempotencyStore = (*IdempotencyStore)(nil)

// NewIdempotencyStore creates the idempotence bucket if needed and returns the store.
func NewIdempotencyStore(db *bolt.DB, ttl time.Duration) (*IdempotencyStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(idempotenceBucketName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create idempotence bucket: %w", err)
	}

	return &IdempotencyStore{db: db, ttl: ttl, now: time.Now}, nil
}

// Claim reserves key unless a live record already holds it.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (state adapter.IdempotencyState, id uuid.UUID, err error) {
	if err := ctx.Err(); err != nil {
		return adapter.IdempotencyPending, uuid.Nil, err
	}

	now := s.now()
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(idempotenceBucketName)
		if raw := bucket.Get([]byte(key)); raw != nil {
			var record idempotenceRecord
			if err := json.Unmarshal(raw, &record); err != nil {
				return err
			}
			if now.Before(record.ExpiresAt) {
				if record.Completed {
					state, id = adapter.IdempotencyCompleted, record.TransactionID
				} else {
					state = adapter.IdempotencyPending
				}
				return nil
			}
		}

		state = adapter.IdempotencyClaimed
		return put(bucket, key, idempotenceRecord{ExpiresAt: now.Add(s.ttl)})
	})
	return state, id, err
}

// Complete binds key to the transaction it produced.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, transactionID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return put(tx.Bucket(idempotenceBucketName), key, idempotenceRecord{
			TransactionID: transactionID,
			Completed:     true,
			ExpiresAt:     s.now().Add(s.ttl),
		})
	})
}

// Release drops key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(idempotenceBucketName).Delete([]byte(key))
	})
}

func put(bucket *bolt.Bucket, key string, record idempotenceRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return bucket.Put([]byte(key), raw)
}
