// Package dto defines data transfer objects for API requests and responses.
package dto

// FormatCurrencyQuery represents the query string of GET /currency/format.
type FormatCurrencyQuery struct {
	Amount string `form:"amount" binding:"required"`
}

// CurrencyInputQuery represents the query string of the parse and mask endpoints.
type CurrencyInputQuery struct {
	Input string `form:"input"`
}

// FormatCurrencyResponse represents a formatted amount.
type FormatCurrencyResponse struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
	Balance   string `json:"balance"`
}

// ParseCurrencyResponse represents the amount read from typed input.
type ParseCurrencyResponse struct {
	Input  string `json:"input"`
	Amount string `json:"amount"`
}

// MaskCurrencyResponse represents typed input reformatted as the user types.
type MaskCurrencyResponse struct {
	Input  string `json:"input"`
	Masked string `json:"masked"`
}
