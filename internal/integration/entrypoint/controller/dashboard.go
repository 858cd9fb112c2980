// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/batchflow/backend/internal/application/usecase/dashboard"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/integration/entrypoint/dto"
)

// defaultSummaryMonths is the window size used when the client does not ask
// for one.
const defaultSummaryMonths = 6

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetMonthlySummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetMonthlySummaryUseCase) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
	}
}

// GetMonthlySummary handles GET /dashboard/summary requests.
// end_month (YYYY-MM) is required; months sizes the trailing window and
// defaults to six.
func (c *DashboardController) GetMonthlySummary(ctx *gin.Context) {
	input := dashboard.GetMonthlySummaryInput{
		EndMonth: ctx.Query("end_month"),
		Months:   defaultSummaryMonths,
	}

	if monthsStr := ctx.Query("months"); monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
			})
			return
		}
		input.Months = months
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.ToMonthlySummaryResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP
// responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var budErr *domainerror.BudgetError
	if errors.As(err, &budErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: budErr.Message,
			Code:  string(budErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
