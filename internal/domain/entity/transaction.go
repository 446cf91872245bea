// Package entity defines the core business entities for the domain layer.
package entity

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage form of a transaction date.
const DateLayout = "2006-01-02"

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a financial transaction in the Finance Tracker system.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal // Negative for expenses, positive for income
	Type        TransactionType
	Category    string
	Description string
	Date        time.Time // Calendar day at UTC midnight
	CreatedAt   time.Time
}

// TransactionDraft is the field set of a transaction before an ID and creation timestamp are assigned.
type TransactionDraft struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Description string
	Date        time.Time
}

// TransactionPatch holds the fields to change on an existing transaction.
// A nil field leaves the stored value untouched.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Type        *TransactionType
	Category    *string
	Description *string
	Date        *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Amount == nil && p.Type == nil && p.Category == nil && p.Description == nil && p.Date == nil
}

// NewTransaction creates a new Transaction entity from a draft.
// The amount is stored as given; callers normalize its sign with SignedAmount first.
// CreatedAt keeps microsecond precision, the finest every store can hold.
func NewTransaction(draft TransactionDraft, now time.Time) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Amount:      draft.Amount,
		Type:        draft.Type,
		Category:    draft.Category,
		Description: draft.Description,
		Date:        CalendarDay(draft.Date),
		CreatedAt:   now.UTC().Truncate(time.Microsecond),
	}
}

// Apply merges the non-nil patch fields into the transaction.
func (t *Transaction) Apply(patch TransactionPatch) {
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Date != nil {
		t.Date = CalendarDay(*patch.Date)
	}
}

// Clone returns a copy that shares no mutable state with t.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}

// HasConsistentSign reports whether the amount's sign agrees with the transaction type.
func (t *Transaction) HasConsistentSign() bool {
	switch t.Type {
	case TransactionTypeExpense:
		return !t.Amount.IsPositive()
	case TransactionTypeIncome:
		return !t.Amount.IsNegative()
	default:
		return false
	}
}

// SignedAmount returns the magnitude of amount with the sign implied by the transaction type:
// negative for expenses, positive for income.
func SignedAmount(amount decimal.Decimal, transactionType TransactionType) decimal.Decimal {
	if transactionType == TransactionTypeExpense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// CalendarDay truncates t to its calendar day at UTC midnight, keeping the wall-clock date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// SortTransactions orders transactions most recent date first, then most recently
// created first, then by ID.
func SortTransactions(transactions []*Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ComputeTotals sums income, expense and net over the given transactions.
// ExpenseTotal is reported as a non-negative magnitude.
func ComputeTotals(transactions []*Transaction) TransactionTotals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case TransactionTypeIncome:
			income = income.Add(t.Amount)
		case TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return TransactionTotals{
		IncomeTotal:  income,
		ExpenseTotal: expense.Abs(),
		NetTotal:     income.Add(expense),
	}
}
