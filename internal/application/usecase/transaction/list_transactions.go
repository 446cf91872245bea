// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
	Type      *entity.TransactionType
	Search    string
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
// Structured filters are pushed down to the repository; the search term is applied on the result.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	criteria := Criteria{
		Filters: entity.TransactionFilters{
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Category:  input.Category,
			Type:      input.Type,
		},
		Search: input.Search,
	}

	transactions, err := uc.transactionRepo.List(ctx, criteria.Filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions = Filter(transactions, criteria)
	totals := entity.ComputeTotals(transactions)

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(transactions)),
		Totals: TotalsOutput{
			IncomeTotal:  totals.IncomeTotal,
			ExpenseTotal: totals.ExpenseTotal,
			NetTotal:     totals.NetTotal,
		},
	}
	for i, t := range transactions {
		output.Transactions[i] = toTransactionOutput(t)
	}

	return output, nil
}

func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:          t.ID,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}
