// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/batchflow/backend/internal/application/usecase/transaction"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
// The month query parameter (YYYY-MM) is required; category_id optionally
// narrows the listing to transactions affecting one category.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		MonthKey: ctx.Query("month"),
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.ToTransactionListResponse(output.Transactions)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input, err := buildTransactionInput(req.Date, req.Amount, req.Type, req.CategoryID, req.SubcategoryID, req.Splits, req.Merchant, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.ToTransactionResponse(output.Transaction)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PUT /transactions/:id requests. The category assignment is
// replaced wholesale along with the other fields.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	base, err := buildTransactionInput(req.Date, req.Amount, req.Type, req.CategoryID, req.SubcategoryID, req.Splits, req.Merchant, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:            transactionID,
		Date:          base.Date,
		Amount:        base.Amount,
		Type:          base.Type,
		CategoryID:    base.CategoryID,
		SubcategoryID: base.SubcategoryID,
		Splits:        base.Splits,
		Merchant:      base.Merchant,
		Notes:         base.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.ToTransactionResponse(output.Transaction)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: transactionID}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// buildTransactionInput converts the shared request shape into a use case
// input, parsing the optional UUID fields.
func buildTransactionInput(
	date string,
	amount float64,
	transactionType string,
	categoryID, subcategoryID *string,
	splits []dto.SplitRequest,
	merchant, notes string,
) (transaction.CreateTransactionInput, error) {
	input := transaction.CreateTransactionInput{
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
		Type:     entity.TransactionType(transactionType),
		Merchant: merchant,
		Notes:    notes,
	}

	var err error
	if input.CategoryID, err = parseOptionalUUID(categoryID); err != nil {
		return input, errors.New("invalid category ID format")
	}
	if input.SubcategoryID, err = parseOptionalUUID(subcategoryID); err != nil {
		return input, errors.New("invalid subcategory ID format")
	}

	for _, split := range splits {
		splitCategoryID, err := uuid.Parse(split.CategoryID)
		if err != nil {
			return input, errors.New("invalid split category ID format")
		}
		splitSubcategoryID, err := parseOptionalUUID(split.SubcategoryID)
		if err != nil {
			return input, errors.New("invalid split subcategory ID format")
		}
		input.Splits = append(input.Splits, transaction.SplitInput{
			CategoryID:    splitCategoryID,
			SubcategoryID: splitSubcategoryID,
			Amount:        decimal.NewFromFloat(split.Amount),
		})
	}
	return input, nil
}

// parseOptionalUUID parses an optional string field into an optional UUID.
func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// handleTransactionError handles transaction errors and returns appropriate
// HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	// Month filters are validated by the budget vocabulary.
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

// getStatusCodeForTransactionError maps transaction error codes to HTTP
// status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeSplitSumMismatch,
		domainerror.ErrCodeEmptySplits,
		domainerror.ErrCodeSubcategoryMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
