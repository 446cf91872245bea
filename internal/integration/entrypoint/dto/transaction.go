// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/usecase/transaction"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// ErrInvalidAmount is returned when an amount is neither a JSON number nor a string.
var ErrInvalidAmount = errors.New("amount must be a number or a string")

// ListTransactionsQuery represents the query string of the transaction listing.
type ListTransactionsQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Category  string `form:"category"`
	Type      string `form:"type" binding:"omitempty,oneof=expense income"`
	Search    string `form:"search"`
}

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is the positive magnitude, either a JSON number or a pt-BR string such as "1.234,50".
type CreateTransactionRequest struct {
	Amount      json.RawMessage `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount      json.RawMessage `json:"amount,omitempty"`
	Type        *string         `json:"type,omitempty"`
	Category    *string         `json:"category,omitempty"`
	Description *string         `json:"description,omitempty"`
	Date        *string         `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	Amount          string    `json:"amount"`
	FormattedAmount string    `json:"formatted_amount"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
	Count        int                       `json:"count"`
}

// ParseAmount reads an amount field. Absent and null amounts are zero; strings go
// through the pt-BR typed-input parser.
func ParseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, ErrInvalidAmount
		}
		return valueobject.ParseTypedInput(s), nil
	}

	amount, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// HasAmount reports whether the raw amount field was sent with a value.
func HasAmount(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID.String(),
		Amount:          txn.Amount.String(),
		FormattedAmount: valueobject.FormatDisplay(txn.Amount),
		Type:            string(txn.Type),
		Category:        txn.Category,
		Description:     txn.Description,
		Date:            txn.Date.Format(entity.DateLayout),
		CreatedAt:       txn.CreatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal.String(),
			ExpenseTotal: output.Totals.ExpenseTotal.String(),
			NetTotal:     output.Totals.NetTotal.String(),
		},
		Count: len(transactions),
	}
}
