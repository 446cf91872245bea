// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/wallet/internal/application/usecase/category"
)

// ListCategoriesQuery represents the query string of the category listing.
type ListCategoriesQuery struct {
	Type      string `form:"type" binding:"omitempty,oneof=expense income"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	TransactionCount int    `json:"transaction_count"`
	PeriodTotal      string `json:"period_total"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts a ListCategoriesOutput to CategoryListResponse.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = CategoryResponse{
			Name:             cat.Name,
			Type:             string(cat.Type),
			TransactionCount: cat.TransactionCount,
			PeriodTotal:      cat.PeriodTotal.String(),
		}
	}

	return CategoryListResponse{
		Categories: categories,
	}
}
