// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// Summarize computes the dashboard summary of transactions as seen at now.
// The balance covers all time; income, expenses and category totals cover the
// calendar month containing now. The input is read only.
func Summarize(transactions []*entity.Transaction, now time.Time) *entity.DashboardSummary {
	start, end := GetMonthBounds(now)

	totalBalance := decimal.Zero
	monthlyIncome := decimal.Zero
	monthlyExpenses := decimal.Zero

	groups := make(map[string]*entity.CategoryTotal)
	order := make([]string, 0)

	for _, t := range transactions {
		totalBalance = totalBalance.Add(t.Amount)

		day := entity.CalendarDay(t.Date)
		if day.Before(start) || day.After(end) {
			continue
		}

		switch t.Type {
		case entity.TransactionTypeIncome:
			monthlyIncome = monthlyIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			monthlyExpenses = monthlyExpenses.Add(t.Amount)
		}

		group, ok := groups[t.Category]
		if !ok {
			// Each category maps to a single type, so the first transaction fixes the group type.
			group = &entity.CategoryTotal{
				Category: t.Category,
				Amount:   decimal.Zero,
				Type:     t.Type,
			}
			groups[t.Category] = group
			order = append(order, t.Category)
		}
		group.Amount = group.Amount.Add(t.Amount.Abs())
		group.TransactionCount++
	}

	monthlyExpenses = monthlyExpenses.Abs()

	byCategory := make([]entity.CategoryTotal, 0, len(order))
	for _, name := range order {
		group := groups[name]
		typeTotal := monthlyExpenses
		if group.Type == entity.TransactionTypeIncome {
			typeTotal = monthlyIncome.Abs()
		}
		group.Percentage = percentageOf(group.Amount, typeTotal)
		byCategory = append(byCategory, *group)
	}

	sort.SliceStable(byCategory, func(i, j int) bool {
		if !byCategory[i].Amount.Equal(byCategory[j].Amount) {
			return byCategory[i].Amount.GreaterThan(byCategory[j].Amount)
		}
		return byCategory[i].Category < byCategory[j].Category
	})

	return &entity.DashboardSummary{
		TotalBalance:           totalBalance,
		MonthlyIncome:          monthlyIncome,
		MonthlyExpenses:        monthlyExpenses,
		TransactionsByCategory: byCategory,
		PeriodStart:            start,
		PeriodEnd:              end,
	}
}

// percentageOf returns part as a percentage of total, rounded to two places. A zero total yields 0.
func percentageOf(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := part.Mul(decimal.NewFromInt(100)).Div(total).Round(2).Float64()
	return pct
}
