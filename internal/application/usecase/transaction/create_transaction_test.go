package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newCreateUseCase(repo *mockTransactionRepository, store adapter.IdempotencyStore) *CreateTransactionUseCase {
	return NewCreateTransactionUseCase(repo, store, fixedClock{now: testNow}, adapter.NoopMetrics{})
}

func TestCreateTransaction_NormalizesSign(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateTransactionInput
		expected decimal.Decimal
	}{
		{
			name:     "expense becomes negative",
			input:    CreateTransactionInput{Amount: decimal.NewFromInt(150), Type: entity.TransactionTypeExpense, Category: entity.CategoryFood},
			expected: decimal.NewFromInt(-150),
		},
		{
			name:     "income stays positive",
			input:    CreateTransactionInput{Amount: decimal.NewFromInt(5000), Type: entity.TransactionTypeIncome, Category: entity.CategorySalary},
			expected: decimal.NewFromInt(5000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockTransactionRepository)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

			output, err := newCreateUseCase(repo, nil).Execute(context.Background(), tt.input)

			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(output.Transaction.Amount), "got %s", output.Transaction.Amount)
			assert.NotEqual(t, uuid.Nil, output.Transaction.ID)
			assert.Equal(t, testNow, output.Transaction.CreatedAt)
			repo.AssertExpectations(t)
		})
	}
}

func TestCreateTransaction_DefaultsDateToToday(t *testing.T) {
	repo := new(mockTransactionRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	output, err := newCreateUseCase(repo, nil).Execute(context.Background(), CreateTransactionInput{
		Amount:   decimal.NewFromInt(20),
		Type:     entity.TransactionTypeExpense,
		Category: entity.CategoryTransport,
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), output.Transaction.Date)
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	tests := []struct {
		name         string
		input        CreateTransactionInput
		expectedCode domainerror.TransactionErrorCode
	}{
		{
			name:         "missing amount",
			input:        CreateTransactionInput{Type: entity.TransactionTypeExpense, Category: entity.CategoryFood},
			expectedCode: domainerror.ErrCodeMissingTransactionFields,
		},
		{
			name:         "missing category",
			input:        CreateTransactionInput{Amount: decimal.NewFromInt(10), Type: entity.TransactionTypeExpense},
			expectedCode: domainerror.ErrCodeMissingTransactionFields,
		},
		{
			name:         "missing amount reported before invalid type",
			input:        CreateTransactionInput{Type: "transfer", Category: entity.CategoryFood},
			expectedCode: domainerror.ErrCodeMissingTransactionFields,
		},
		{
			name:         "negative amount",
			input:        CreateTransactionInput{Amount: decimal.NewFromInt(-10), Type: entity.TransactionTypeExpense, Category: entity.CategoryFood},
			expectedCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:         "sub-cent amount",
			input:        CreateTransactionInput{Amount: decimal.RequireFromString("0.005"), Type: entity.TransactionTypeExpense, Category: entity.CategoryFood},
			expectedCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:         "more than two decimal places",
			input:        CreateTransactionInput{Amount: decimal.RequireFromString("12.345"), Type: entity.TransactionTypeIncome, Category: entity.CategorySalary},
			expectedCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:         "invalid type",
			input:        CreateTransactionInput{Amount: decimal.NewFromInt(10), Type: "transfer", Category: entity.CategoryFood},
			expectedCode: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name:         "unknown category",
			input:        CreateTransactionInput{Amount: decimal.NewFromInt(10), Type: entity.TransactionTypeExpense, Category: "Viagem"},
			expectedCode: domainerror.ErrCodeUnknownCategory,
		},
		{
			name:         "income category on expense",
			input:        CreateTransactionInput{Amount: decimal.NewFromInt(10), Type: entity.TransactionTypeExpense, Category: entity.CategorySalary},
			expectedCode: domainerror.ErrCodeCategoryTypeMismatch,
		},
		{
			name: "description too long",
			input: CreateTransactionInput{
				Amount:      decimal.NewFromInt(10),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryFood,
				Description: strings.Repeat("a", MaxDescriptionLength+1),
			},
			expectedCode: domainerror.ErrCodeDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockTransactionRepository)

			output, err := newCreateUseCase(repo, nil).Execute(context.Background(), tt.input)

			assert.Nil(t, output)
			var txnErr *domainerror.TransactionError
			require.True(t, errors.As(err, &txnErr), "expected TransactionError, got %v", err)
			assert.Equal(t, tt.expectedCode, txnErr.Code)
			assert.True(t, domainerror.IsValidationError(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateTransaction_AcceptsTrailingZeroPlaces(t *testing.T) {
	repo := new(mockTransactionRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	output, err := newCreateUseCase(repo, nil).Execute(context.Background(), CreateTransactionInput{
		Amount:   decimal.RequireFromString("19.900"),
		Type:     entity.TransactionTypeExpense,
		Category: entity.CategoryFood,
	})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("-19.9").Equal(output.Transaction.Amount))
}

func TestDecimalPlaces(t *testing.T) {
	tests := []struct {
		value    string
		expected int32
	}{
		{"10", 0},
		{"10.5", 1},
		{"10.50", 1},
		{"0.01", 2},
		{"0.005", 3},
		{"150.000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, decimalPlaces(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestCreateTransaction_DescriptionLengthCountsCharacters(t *testing.T) {
	repo := new(mockTransactionRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := newCreateUseCase(repo, nil).Execute(context.Background(), CreateTransactionInput{
		Amount:      decimal.NewFromInt(10),
		Type:        entity.TransactionTypeExpense,
		Category:    entity.CategoryFood,
		Description: strings.Repeat("ç", MaxDescriptionLength),
	})

	assert.NoError(t, err)
}

func TestCreateTransaction_RepositoryError(t *testing.T) {
	repo := new(mockTransactionRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := newCreateUseCase(repo, nil).Execute(context.Background(), CreateTransactionInput{
		Amount:   decimal.NewFromInt(10),
		Type:     entity.TransactionTypeExpense,
		Category: entity.CategoryFood,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, domainerror.IsValidationError(err))
}

func TestCreateTransaction_Idempotency(t *testing.T) {
	input := CreateTransactionInput{
		Amount:         decimal.NewFromInt(150),
		Type:           entity.TransactionTypeExpense,
		Category:       entity.CategoryFood,
		IdempotencyKey: "key-1",
	}

	t.Run("first request claims and completes the key", func(t *testing.T) {
		repo := new(mockTransactionRepository)
		store := new(mockIdempotencyStore)
		store.On("Claim", mock.Anything, "key-1").Return(adapter.IdempotencyClaimed, uuid.Nil, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		store.On("Complete", mock.Anything, "key-1", mock.AnythingOfType("uuid.UUID")).Return(nil)

		output, err := newCreateUseCase(repo, store).Execute(context.Background(), input)

		require.NoError(t, err)
		assert.False(t, output.Replayed)
		store.AssertCalled(t, "Complete", mock.Anything, "key-1", output.Transaction.ID)
	})

	t.Run("completed key replays the stored transaction", func(t *testing.T) {
		repo := new(mockTransactionRepository)
		store := new(mockIdempotencyStore)
		existing := entity.NewTransaction(entity.TransactionDraft{
			Amount:   decimal.NewFromInt(-150),
			Type:     entity.TransactionTypeExpense,
			Category: entity.CategoryFood,
			Date:     testNow,
		}, testNow)
		store.On("Claim", mock.Anything, "key-1").Return(adapter.IdempotencyCompleted, existing.ID, nil)
		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		output, err := newCreateUseCase(repo, store).Execute(context.Background(), input)

		require.NoError(t, err)
		assert.True(t, output.Replayed)
		assert.Equal(t, existing.ID, output.Transaction.ID)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("pending key is a conflict", func(t *testing.T) {
		repo := new(mockTransactionRepository)
		store := new(mockIdempotencyStore)
		store.On("Claim", mock.Anything, "key-1").Return(adapter.IdempotencyPending, uuid.Nil, nil)

		_, err := newCreateUseCase(repo, store).Execute(context.Background(), input)

		var txnErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txnErr))
		assert.Equal(t, domainerror.ErrCodeIdempotencyKeyReused, txnErr.Code)
	})

	t.Run("failed create releases the key", func(t *testing.T) {
		repo := new(mockTransactionRepository)
		store := new(mockIdempotencyStore)
		store.On("Claim", mock.Anything, "key-1").Return(adapter.IdempotencyClaimed, uuid.Nil, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("boom"))
		store.On("Release", mock.Anything, "key-1").Return(nil)

		_, err := newCreateUseCase(repo, store).Execute(context.Background(), input)

		require.Error(t, err)
		store.AssertExpectations(t)
	})

	t.Run("unavailable store still creates", func(t *testing.T) {
		repo := new(mockTransactionRepository)
		store := new(mockIdempotencyStore)
		store.On("Claim", mock.Anything, "key-1").Return(adapter.IdempotencyClaimed, uuid.Nil, errors.New("connection refused"))
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		output, err := newCreateUseCase(repo, store).Execute(context.Background(), input)

		require.NoError(t, err)
		assert.NotNil(t, output.Transaction)
		store.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	})
}
