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

func TestListTransactions_PushesFiltersAndAppliesSearch(t *testing.T) {
	repo := new(mockTransactionRepository)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expense := entity.TransactionTypeExpense
	filters := entity.TransactionFilters{StartDate: &start, Type: &expense}

	var expenses []*entity.Transaction
	for _, txn := range sampleTransactions() {
		if filters.Matches(txn) {
			expenses = append(expenses, txn)
		}
	}
	repo.On("List", mock.Anything, filters).Return(expenses, nil)

	output, err := NewListTransactionsUseCase(repo).Execute(context.Background(), ListTransactionsInput{
		StartDate: &start,
		Type:      &expense,
		Search:    "a",
	})

	require.NoError(t, err)
	assert.Len(t, output.Transactions, 3)
	assert.True(t, output.Totals.IncomeTotal.IsZero())
	assert.True(t, decimal.NewFromInt(395).Equal(output.Totals.ExpenseTotal), "got %s", output.Totals.ExpenseTotal)
	assert.True(t, decimal.NewFromInt(-395).Equal(output.Totals.NetTotal))
	repo.AssertExpectations(t)
}

func TestListTransactions_RepositoryError(t *testing.T) {
	repo := new(mockTransactionRepository)
	repo.On("List", mock.Anything, entity.TransactionFilters{}).Return(nil, errors.New("timeout"))

	_, err := NewListTransactionsUseCase(repo).Execute(context.Background(), ListTransactionsInput{})

	assert.ErrorContains(t, err, "timeout")
}

func TestGetTransaction(t *testing.T) {
	existing := existingExpense()
	repo := new(mockTransactionRepository)
	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	missing := uuid.New()
	repo.On("FindByID", mock.Anything, missing).Return(nil, domainerror.ErrTransactionNotFound)

	uc := NewGetTransactionUseCase(repo)

	output, err := uc.Execute(context.Background(), GetTransactionInput{TransactionID: existing.ID})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.Transaction.ID)

	_, err = uc.Execute(context.Background(), GetTransactionInput{TransactionID: missing})
	var txnErr *domainerror.TransactionError
	require.True(t, errors.As(err, &txnErr))
	assert.Equal(t, domainerror.ErrCodeTransactionNotFound, txnErr.Code)
}

func TestDeleteTransaction(t *testing.T) {
	id := uuid.New()
	repo := new(mockTransactionRepository)
	repo.On("Delete", mock.Anything, id).Return(nil).Once()
	repo.On("Delete", mock.Anything, id).Return(domainerror.ErrTransactionNotFound).Once()

	uc := NewDeleteTransactionUseCase(repo)

	output, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: id})
	require.NoError(t, err)
	assert.True(t, output.Success)

	_, err = uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: id})
	var txnErr *domainerror.TransactionError
	require.True(t, errors.As(err, &txnErr))
	assert.Equal(t, domainerror.ErrCodeTransactionNotFound, txnErr.Code)
}
