// Package boltdb implements repository interfaces on an embedded bbolt file.
package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	bolt "go.etcd.io/bbolt"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

var transactionsBucketName = []byte("transactions")

// transactionRecord is the JSON value stored per transaction, keyed by the ID bytes.
type transactionRecord struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func recordFromEntity(t *entity.Transaction) transactionRecord {
	return transactionRecord{
		ID:          t.ID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.Format(entity.DateLayout),
		CreatedAt:   t.CreatedAt,
	}
}

func (r transactionRecord) toEntity() (*entity.Transaction, error) {
	date, err := entity.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("corrupt date for transaction %s: %w", r.ID, err)
	}
	return &entity.Transaction{
		ID:          r.ID,
		Amount:      r.Amount,
		Type:        entity.TransactionType(r.Type),
		Category:    r.Category,
		Description: r.Description,
		Date:        date,
		CreatedAt:   r.CreatedAt.UTC(),
	}, nil
}

// TransactionRepository implements the adapter.TransactionRepository interface.
type TransactionRepository struct {
	db *bolt.DB
}

var _ adapter.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates the transactions bucket if needed and returns the repository.
func NewTransactionRepository(db *bolt.DB) (*TransactionRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(transactionsBucketName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transactions bucket: %w", err)
	}

	return &TransactionRepository{db: db}, nil
}

// List returns the transactions matching filters, most recent first.
func (r *TransactionRepository) List(ctx context.Context, filters entity.TransactionFilters) ([]*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var transactions []*entity.Transaction
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(transactionsBucketName).ForEach(func(_, raw []byte) error {
			t, err := decode(raw)
			if err != nil {
				return err
			}
			if filters.Matches(t) {
				transactions = append(transactions, t)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	entity.SortTransactions(transactions)
	return transactions, nil
}

// Create stores a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !transaction.HasConsistentSign() {
		return domainerror.ErrInconsistentSign
	}

	raw, err := json.Marshal(recordFromEntity(transaction))
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(transactionsBucketName).Put(transaction.ID[:], raw)
	})
}

// FindByID retrieves a transaction by its ID.
func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var transaction *entity.Transaction
	err := r.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(transactionsBucketName).Get(id[:])
		if raw == nil {
			return domainerror.ErrTransactionNotFound
		}

		t, err := decode(raw)
		if err != nil {
			return err
		}
		transaction = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// Update merges patch into the stored transaction within a single write transaction.
func (r *TransactionRepository) Update(ctx context.Context, id uuid.UUID, patch entity.TransactionPatch) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated *entity.Transaction
	err := r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(transactionsBucketName)
		raw := bucket.Get(id[:])
		if raw == nil {
			return domainerror.ErrTransactionNotFound
		}

		t, err := decode(raw)
		if err != nil {
			return err
		}
		t.Apply(patch)
		if !t.HasConsistentSign() {
			return domainerror.ErrInconsistentSign
		}

		encoded, err := json.Marshal(recordFromEntity(t))
		if err != nil {
			return err
		}
		if err := bucket.Put(id[:], encoded); err != nil {
			return err
		}

		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a transaction.
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(transactionsBucketName)
		if bucket.Get(id[:]) == nil {
			return domainerror.ErrTransactionNotFound
		}
		return bucket.Delete(id[:])
	})
}

func decode(raw []byte) (*entity.Transaction, error) {
	var record transactionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return record.toEntity()
}
