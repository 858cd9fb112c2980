// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/application/usecase/recurring"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring-rule endpoints.
type RecurringController struct {
	listUseCase        *recurring.ListRulesUseCase
	createUseCase      *recurring.CreateRuleUseCase
	updateUseCase      *recurring.UpdateRuleUseCase
	deleteUseCase      *recurring.DeleteRuleUseCase
	setPausedUseCase   *recurring.SetPausedUseCase
	materializeUseCase *recurring.MaterializeMonthUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listUseCase *recurring.ListRulesUseCase,
	createUseCase *recurring.CreateRuleUseCase,
	updateUseCase *recurring.UpdateRuleUseCase,
	deleteUseCase *recurring.DeleteRuleUseCase,
	setPausedUseCase *recurring.SetPausedUseCase,
	materializeUseCase *recurring.MaterializeMonthUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		setPausedUseCase:   setPausedUseCase,
		materializeUseCase: materializeUseCase,
	}
}

// List handles GET /recurring requests.
// Every rule is returned with its next occurrence relative to today; paused
// rules report none.
func (c *RecurringController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recurring rules",
		})
		return
	}

	response := dto.ToRuleListResponse(output.Rules)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	var req dto.CreateRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	subcategoryID, err := parseOptionalUUID(req.SubcategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subcategory ID format",
		})
		return
	}

	input := recurring.CreateRuleInput{
		Label:         req.Label,
		Amount:        decimal.NewFromFloat(req.Amount),
		Frequency:     entity.Frequency(req.Frequency),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Merchant:      req.Merchant,
		Notes:         req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	response := dto.ToRuleResponse(output.Rule)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /recurring/:id requests. Absent fields are left
// unchanged; an explicit empty end_date clears the end date and an explicit
// empty subcategory_id detaches the subcategory.
func (c *RecurringController) Update(ctx *gin.Context) {
	ruleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rule ID format",
		})
		return
	}

	var req dto.UpdateRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := recurring.UpdateRuleInput{
		RuleID:    ruleID,
		Label:     req.Label,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Merchant:  req.Merchant,
		Notes:     req.Notes,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.SubcategoryID != nil {
		if *req.SubcategoryID == "" {
			input.ClearSubcategory = true
		} else {
			subcategoryID, err := uuid.Parse(*req.SubcategoryID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid subcategory ID format",
				})
				return
			}
			input.SubcategoryID = &subcategoryID
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	response := dto.ToRuleResponse(output.Rule)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /recurring/:id requests. Transactions the rule
// already generated are kept.
func (c *RecurringController) Delete(ctx *gin.Context) {
	ruleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rule ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRuleInput{RuleID: ruleID}); err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetPaused handles PATCH /recurring/:id/paused requests.
func (c *RecurringController) SetPaused(ctx *gin.Context) {
	ruleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid rule ID format",
		})
		return
	}

	var req dto.SetPausedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := recurring.SetPausedInput{
		RuleID: ruleID,
		Paused: *req.Paused,
	}

	output, err := c.setPausedUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	response := dto.ToRuleResponse(output.Rule)
	ctx.JSON(http.StatusOK, response)
}

// Materialize handles POST /recurring/materialize/:month requests.
// Re-running the materialization for a month is safe: occurrences that
// already have a linked transaction are skipped.
func (c *RecurringController) Materialize(ctx *gin.Context) {
	input := recurring.MaterializeMonthInput{
		MonthKey: ctx.Param("month"),
	}

	output, err := c.materializeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	response := dto.ToMaterializeMonthResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleRecurringError handles recurring-rule errors and returns appropriate
// HTTP responses.
func (c *RecurringController) handleRecurringError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		statusCode := c.getStatusCodeForRecurringError(recErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	// Rule amounts and dates share the transaction vocabulary.
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	// Materialization validates its month with the budget vocabulary and
	// rule creation resolves categories.
	var budErr *domainerror.BudgetError
	if errors.As(err, &budErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: budErr.Message,
			Code:  string(budErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeCategoryNotFound || catErr.Code == domainerror.ErrCodeSubcategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecurringError maps recurring error codes to HTTP status codes.
func (c *RecurringController) getStatusCodeForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRuleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeEndBeforeStart,
		domainerror.ErrCodeMissingLabel:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
