// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/wallet/internal/application/usecase/category"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listUseCase: listUseCase,
	}
}

// List handles GET /categories requests.
// Optional query parameters: type, start_date and end_date (statistics need both dates).
func (c *CategoryController) List(ctx *gin.Context) {
	var query dto.ListCategoriesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid query parameters",
			Code:    string(domainerror.ErrCodeInvalidQuery),
			Details: err.Error(),
		})
		return
	}

	input := category.ListCategoriesInput{
		StartDate: optionalDate(query.StartDate),
		EndDate:   optionalDate(query.EndDate),
	}
	if query.Type != "" {
		txnType := entity.TransactionType(query.Type)
		input.Type = &txnType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
			Code:  string(domainerror.ErrCodeInternal),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}
