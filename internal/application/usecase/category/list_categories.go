// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Type      *entity.TransactionType // Optional filter by transaction type
	StartDate *time.Time              // Optional start date for statistics
	EndDate   *time.Time              // Optional end date for statistics
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	Name             string
	Type             entity.TransactionType
	TransactionCount int
	PeriodTotal      decimal.Decimal // Sum of absolute amounts within the requested period
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(transactionRepo adapter.TransactionRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the category listing.
// Statistics are only computed when both bounds of the period are given.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	var categories []entity.Category
	if input.Type != nil {
		categories = entity.CategoriesByType(*input.Type)
	} else {
		categories = entity.Categories()
	}

	stats := make(map[string]*CategoryOutput)
	if input.StartDate != nil && input.EndDate != nil {
		transactions, err := uc.transactionRepo.List(ctx, entity.TransactionFilters{
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Type:      input.Type,
		})
		if err != nil {
			// Log error but continue without stats
			slog.Debug("Failed to load category statistics", "error", err)
		}
		for _, t := range transactions {
			s, ok := stats[t.Category]
			if !ok {
				s = &CategoryOutput{PeriodTotal: decimal.Zero}
				stats[t.Category] = s
			}
			s.TransactionCount++
			s.PeriodTotal = s.PeriodTotal.Add(t.Amount.Abs())
		}
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(categories)),
	}
	for i, c := range categories {
		item := &CategoryOutput{
			Name:        c.Name,
			Type:        c.Type,
			PeriodTotal: decimal.Zero,
		}
		if s, ok := stats[c.Name]; ok {
			item.TransactionCount = s.TransactionCount
			item.PeriodTotal = s.PeriodTotal
		}
		output.Categories[i] = item
	}

	return output, nil
}
