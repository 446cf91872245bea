// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/dto"
)

// CurrencyController exposes the currency codec.
type CurrencyController struct {
	codec valueobject.Codec
}

// NewCurrencyController creates a new currency controller instance.
func NewCurrencyController(codec valueobject.Codec) *CurrencyController {
	return &CurrencyController{
		codec: codec,
	}
}

// Format handles GET /currency/format requests. The amount is a plain decimal such as -1234.5.
func (c *CurrencyController) Format(ctx *gin.Context) {
	var query dto.FormatCurrencyQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Query parameter amount is required",
			Code:    string(domainerror.ErrCodeInvalidQuery),
			Details: err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(query.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter amount must be a decimal number",
			Code:  string(domainerror.ErrCodeInvalidQuery),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.FormatCurrencyResponse{
		Amount:    amount.String(),
		Formatted: c.codec.FormatDisplay(amount),
		Balance:   string(valueobject.BalanceCategory(amount)),
	})
}

// Parse handles GET /currency/parse requests. Unreadable input yields zero.
func (c *CurrencyController) Parse(ctx *gin.Context) {
	var query dto.CurrencyInputQuery
	_ = ctx.ShouldBindQuery(&query)

	ctx.JSON(http.StatusOK, dto.ParseCurrencyResponse{
		Input:  query.Input,
		Amount: c.codec.ParseTypedInput(query.Input).String(),
	})
}

// Mask handles GET /currency/mask requests.
func (c *CurrencyController) Mask(ctx *gin.Context) {
	var query dto.CurrencyInputQuery
	_ = ctx.ShouldBindQuery(&query)

	ctx.JSON(http.StatusOK, dto.MaskCurrencyResponse{
		Input:  query.Input,
		Masked: c.codec.FormatAsUserTypes(query.Input),
	})
}
