// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields keep their stored values.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Amount        *decimal.Decimal // Magnitude as entered; the sign comes from the resulting type
	Type          *entity.TransactionType
	Category      *string
	Description   *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	patch := entity.TransactionPatch{
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
	}
	if patch.IsEmpty() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyPatch,
			"at least one field must be provided",
			domainerror.ErrEmptyPatch,
		)
	}

	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	merged := existing.Clone()
	merged.Apply(patch)

	magnitude := existing.Amount.Abs()
	if input.Amount != nil {
		magnitude = *input.Amount
	}
	if err := validateTransaction(merged, magnitude); err != nil {
		return nil, err
	}

	// Amount, type and category are validated together, so they are written together.
	if input.Amount != nil || input.Type != nil || input.Category != nil {
		signed := entity.SignedAmount(magnitude, merged.Type)
		patch.Amount = &signed
		patch.Type = &merged.Type
		patch.Category = &merged.Category
	}

	updated, err := uc.transactionRepo.Update(ctx, input.TransactionID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(updated),
	}, nil
}
