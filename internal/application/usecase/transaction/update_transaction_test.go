package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

func existingExpense() *entity.Transaction {
	return entity.NewTransaction(entity.TransactionDraft{
		Amount:      decimal.NewFromInt(-150),
		Type:        entity.TransactionTypeExpense,
		Category:    entity.CategoryFood,
		Description: "Supermercado",
		Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	}, testNow)
}

func TestUpdateTransaction_OnlyPatchedFieldsChange(t *testing.T) {
	existing := existingExpense()
	repo := new(mockTransactionRepository)
	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	description := "Feira"
	updated := existing.Clone()
	updated.Description = description
	var captured entity.TransactionPatch
	repo.On("Update", mock.Anything, existing.ID, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(2).(entity.TransactionPatch) }).
		Return(updated, nil)

	output, err := NewUpdateTransactionUseCase(repo).Execute(context.Background(), UpdateTransactionInput{
		TransactionID: existing.ID,
		Description:   &description,
	})

	require.NoError(t, err)
	assert.Equal(t, "Feira", output.Transaction.Description)
	assert.True(t, existing.Amount.Equal(output.Transaction.Amount))
	assert.Equal(t, existing.Category, output.Transaction.Category)
	assert.Equal(t, existing.Date, output.Transaction.Date)
	assert.Equal(t, existing.CreatedAt, output.Transaction.CreatedAt)

	assert.Nil(t, captured.Amount)
	assert.Nil(t, captured.Type)
	assert.Nil(t, captured.Category)
}

func TestUpdateTransaction_TypeChangeRenormalizesSign(t *testing.T) {
	existing := existingExpense()
	repo := new(mockTransactionRepository)
	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	var captured entity.TransactionPatch
	repo.On("Update", mock.Anything, existing.ID, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(2).(entity.TransactionPatch) }).
		Return(existing, nil)

	income := entity.TransactionTypeIncome
	category := entity.CategoryFreelance
	_, err := NewUpdateTransactionUseCase(repo).Execute(context.Background(), UpdateTransactionInput{
		TransactionID: existing.ID,
		Type:          &income,
		Category:      &category,
	})

	require.NoError(t, err)
	require.NotNil(t, captured.Amount)
	assert.True(t, decimal.NewFromInt(150).Equal(*captured.Amount))
	assert.Equal(t, entity.TransactionTypeIncome, *captured.Type)
	assert.Equal(t, entity.CategoryFreelance, *captured.Category)
}

func TestUpdateTransaction_AmountTakesSignOfStoredType(t *testing.T) {
	existing := existingExpense()
	repo := new(mockTransactionRepository)
	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	var captured entity.TransactionPatch
	repo.On("Update", mock.Anything, existing.ID, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(2).(entity.TransactionPatch) }).
		Return(existing, nil)

	amount := decimal.NewFromInt(200)
	_, err := NewUpdateTransactionUseCase(repo).Execute(context.Background(), UpdateTransactionInput{
		TransactionID: existing.ID,
		Amount:        &amount,
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-200).Equal(*captured.Amount))
}

func TestUpdateTransaction_Errors(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		repo := new(mockTransactionRepository)

		_, err := NewUpdateTransactionUseCase(repo).Execute(context.Background(), UpdateTransactionInput{TransactionID: uuid.New()})

		var txnErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txnErr))
		assert.Equal(t, domainerror.ErrCodeEmptyPatch, txnErr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockTransactionRepository)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, domainerror.ErrTransactionNotFound)

		description := "x"
		_, err := NewUpdateTransactionUseCase(repo).Execute(context.Background(), UpdateTransactionInput{
			TransactionID: id,
			Description:   &description,
		})

		var txnErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txnErr))
		assert.Equal(t, domainerror.ErrCodeTransactionNotFound, txnErr.Code)
		assert.True(t, errors.Is(err, domainerror.ErrTransactionNotFound))
	})

	t.Run("type change leaves category mismatched", func(t *testing.T) {
		existing := existingExpense()
		repo := new(mockTransactionRepository)
		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		income := entity.TransactionTypeIncome
		_, err := NewUpdateTransactionUseCase(repo).Execute(context.Background(), UpdateTransactionInput{
			TransactionID: existing.ID,
			Type:          &income,
		})

		var txnErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txnErr))
		assert.Equal(t, domainerror.ErrCodeCategoryTypeMismatch, txnErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("sub-cent amount", func(t *testing.T) {
		existing := existingExpense()
		repo := new(mockTransactionRepository)
		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		amount := decimal.RequireFromString("0.005")
		_, err := NewUpdateTransactionUseCase(repo).Execute(context.Background(), UpdateTransactionInput{
			TransactionID: existing.ID,
			Amount:        &amount,
		})

		var txnErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txnErr))
		assert.Equal(t, domainerror.ErrCodeInvalidTransactionAmount, txnErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		existing := existingExpense()
		repo := new(mockTransactionRepository)
		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("Update", mock.Anything, existing.ID, mock.Anything).Return(nil, domainerror.ErrTransactionNotFound)

		description := "x"
		_, err := NewUpdateTransactionUseCase(repo).Execute(context.Background(), UpdateTransactionInput{
			TransactionID: existing.ID,
			Description:   &description,
		})

		assert.True(t, errors.Is(err, domainerror.ErrTransactionNotFound))
	})
}
