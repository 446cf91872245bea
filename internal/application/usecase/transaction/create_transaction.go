// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Amount         decimal.Decimal // Magnitude as entered; the sign comes from Type
	Type           entity.TransactionType
	Category       string
	Description    string
	Date           time.Time // Zero means today
	IdempotencyKey string    // Optional
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
	Replayed    bool // True when the idempotency key had already produced this transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo  adapter.TransactionRepository
	idempotencyStore adapter.IdempotencyStore
	clock            adapter.Clock
	metrics          adapter.MetricsRecorder
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
// idempotencyStore may be nil, in which case idempotency keys are ignored.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	idempotencyStore adapter.IdempotencyStore,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:  transactionRepo,
		idempotencyStore: idempotencyStore,
		clock:            clock,
		metrics:          metrics,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	now := uc.clock.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	transaction := entity.NewTransaction(entity.TransactionDraft{
		Amount:      entity.SignedAmount(input.Amount, input.Type),
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		Date:        date,
	}, now)

	if err := validateTransaction(transaction, input.Amount); err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" && uc.idempotencyStore != nil {
		return uc.createOnce(ctx, input.IdempotencyKey, transaction)
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}

// createOnce stores transaction unless key already produced one, in which case
// the earlier transaction is returned. A failing idempotency store degrades to a
// plain create.
func (uc *CreateTransactionUseCase) createOnce(ctx context.Context, key string, transaction *entity.Transaction) (*CreateTransactionOutput, error) {
	state, existingID, err := uc.idempotencyStore.Claim(ctx, key)
	if err != nil {
		slog.Debug("Idempotency store unavailable, creating without key",
			"key", key,
			"error", err,
		)
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return nil, fmt.Errorf("failed to create transaction: %w", err)
		}
		return &CreateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
	}

	switch state {
	case adapter.IdempotencyPending:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeIdempotencyKeyReused,
			"a request with this idempotency key is still in progress",
			domainerror.ErrIdempotencyKeyReused,
		)
	case adapter.IdempotencyCompleted:
		return uc.replay(ctx, key, existingID)
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		if releaseErr := uc.idempotencyStore.Release(ctx, key); releaseErr != nil {
			slog.Debug("Failed to release idempotency key",
				"key", key,
				"error", releaseErr,
			)
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := uc.idempotencyStore.Complete(ctx, key, transaction.ID); err != nil {
		slog.Debug("Failed to complete idempotency key",
			"key", key,
			"transactionID", transaction.ID,
			"error", err,
		)
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}

func (uc *CreateTransactionUseCase) replay(ctx context.Context, key string, id uuid.UUID) (*CreateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			// The transaction was deleted after the first request. The key keeps pointing at it.
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to load transaction for idempotency key %s: %w", key, err)
	}

	uc.metrics.RecordIdempotentReplay()

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(existing),
		Replayed:    true,
	}, nil
}
