// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/wallet/internal/application/usecase/dashboard"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// DashboardSummaryResponse represents the response for the dashboard summary API.
type DashboardSummaryResponse struct {
	TotalBalance           string                   `json:"total_balance"`
	MonthlyIncome          string                   `json:"monthly_income"`
	MonthlyExpenses        string                   `json:"monthly_expenses"`
	BalanceStatus          string                   `json:"balance_status"`
	Formatted              FormattedSummaryResponse `json:"formatted"`
	TransactionsByCategory []CategoryTotalResponse  `json:"transactions_by_category"`
	Period                 SummaryPeriodResponse    `json:"period"`
}

// FormattedSummaryResponse carries the summary figures as display text.
type FormattedSummaryResponse struct {
	TotalBalance    string `json:"total_balance"`
	MonthlyIncome   string `json:"monthly_income"`
	MonthlyExpenses string `json:"monthly_expenses"`
}

// CategoryTotalResponse represents a single category group in the summary.
type CategoryTotalResponse struct {
	Category         string  `json:"category"`
	Amount           string  `json:"amount"`
	FormattedAmount  string  `json:"formatted_amount"`
	Type             string  `json:"type"`
	TransactionCount int     `json:"transaction_count"`
	Percentage       float64 `json:"percentage"`
}

// SummaryPeriodResponse represents the month the summary covers.
type SummaryPeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}

// ToDashboardSummaryResponse converts a GetSummaryOutput to DashboardSummaryResponse DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	summary := output.Summary

	categories := make([]CategoryTotalResponse, len(summary.TransactionsByCategory))
	for i, group := range summary.TransactionsByCategory {
		categories[i] = CategoryTotalResponse{
			Category:         group.Category,
			Amount:           group.Amount.String(),
			FormattedAmount:  valueobject.FormatDisplay(group.Amount),
			Type:             string(group.Type),
			TransactionCount: group.TransactionCount,
			Percentage:       group.Percentage,
		}
	}

	return DashboardSummaryResponse{
		TotalBalance:    summary.TotalBalance.String(),
		MonthlyIncome:   summary.MonthlyIncome.String(),
		MonthlyExpenses: summary.MonthlyExpenses.String(),
		BalanceStatus:   string(valueobject.BalanceCategory(summary.TotalBalance)),
		Formatted: FormattedSummaryResponse{
			TotalBalance:    valueobject.FormatDisplay(summary.TotalBalance),
			MonthlyIncome:   valueobject.FormatDisplay(summary.MonthlyIncome),
			MonthlyExpenses: valueobject.FormatDisplay(summary.MonthlyExpenses),
		},
		TransactionsByCategory: categories,
		Period: SummaryPeriodResponse{
			StartDate: summary.PeriodStart.Format(entity.DateLayout),
			EndDate:   summary.PeriodEnd.Format(entity.DateLayout),
			Label:     output.PeriodLabel,
		},
	}
}
