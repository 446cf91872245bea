// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary is the aggregate shown on the dashboard. It is derived on every read and never stored.
type DashboardSummary struct {
	TotalBalance           decimal.Decimal // All time, signed
	MonthlyIncome          decimal.Decimal
	MonthlyExpenses        decimal.Decimal // Non-negative magnitude
	TransactionsByCategory []CategoryTotal
	PeriodStart            time.Time
	PeriodEnd              time.Time
}

// CategoryTotal is the month-scoped total of a single category.
type CategoryTotal struct {
	Category         string
	Amount           decimal.Decimal // Sum of absolute amounts
	Type             TransactionType
	TransactionCount int
	Percentage       float64 // Share of the monthly total of the same type
}
