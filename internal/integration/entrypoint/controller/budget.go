// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/application/usecase/budget"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	overviewUseCase   *budget.GetMonthOverviewUseCase
	setAmountUseCase  *budget.SetPlannedAmountUseCase
	initializeUseCase *budget.InitializeMonthUseCase
	copyUseCase       *budget.CopyBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	overviewUseCase *budget.GetMonthOverviewUseCase,
	setAmountUseCase *budget.SetPlannedAmountUseCase,
	initializeUseCase *budget.InitializeMonthUseCase,
	copyUseCase *budget.CopyBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		overviewUseCase:   overviewUseCase,
		setAmountUseCase:  setAmountUseCase,
		initializeUseCase: initializeUseCase,
		copyUseCase:       copyUseCase,
	}
}

// GetMonthOverview handles GET /budgets/:month requests.
// It returns the full derived budget state for the month, planned and actual.
func (c *BudgetController) GetMonthOverview(ctx *gin.Context) {
	input := budget.GetMonthOverviewInput{
		MonthKey: ctx.Param("month"),
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToMonthOverviewResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// SetPlannedAmount handles PUT /budgets/:month/amounts requests.
func (c *BudgetController) SetPlannedAmount(ctx *gin.Context) {
	var req dto.SetPlannedAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target ID format",
		})
		return
	}

	input := budget.SetPlannedAmountInput{
		MonthKey: ctx.Param("month"),
		Level:    budget.PlannedLevel(req.Level),
		TargetID: targetID,
		Amount:   decimal.NewFromFloat(req.Amount),
	}

	if err := c.setAmountUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// InitializeMonth handles POST /budgets/:month requests.
// Setting a month up is explicit so an all-zero plan reads as deliberate.
func (c *BudgetController) InitializeMonth(ctx *gin.Context) {
	input := budget.InitializeMonthInput{
		MonthKey: ctx.Param("month"),
	}

	if err := c.initializeUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CopyBudget handles POST /budgets/:month/copy requests.
// An empty from_month copies from the nearest earlier set-up month.
func (c *BudgetController) CopyBudget(ctx *gin.Context) {
	var req dto.CopyBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budget.CopyBudgetInput{
		FromMonthKey: req.FromMonth,
		ToMonthKey:   ctx.Param("month"),
	}

	output, err := c.copyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CopyBudgetResponse{
		FromMonth: output.FromMonthKey.String(),
	})
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budErr *domainerror.BudgetError
	if errors.As(err, &budErr) {
		statusCode := c.getStatusCodeForBudgetError(budErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budErr.Message,
			Code:  string(budErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMonthKey,
		domainerror.ErrCodeNegativePlannedAmount,
		domainerror.ErrCodeInvalidMonthRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
