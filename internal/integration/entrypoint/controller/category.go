// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/application/usecase/category"
	"github.com/batchflow/backend/internal/domain/entity"
	domainerror "github.com/batchflow/backend/internal/domain/error"
	"github.com/batchflow/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase      *category.ListCategoriesUseCase
	createUseCase    *category.CreateCategoryUseCase
	updateUseCase    *category.UpdateCategoryUseCase
	deleteUseCase    *category.DeleteCategoryUseCase
	reorderUseCase   *category.ReorderCategoryUseCase
	addSubUseCase    *category.AddSubcategoryUseCase
	renameSubUseCase *category.UpdateSubcategoryUseCase
	deleteSubUseCase *category.DeleteSubcategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	reorderUseCase *category.ReorderCategoryUseCase,
	addSubUseCase *category.AddSubcategoryUseCase,
	renameSubUseCase *category.UpdateSubcategoryUseCase,
	deleteSubUseCase *category.DeleteSubcategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		reorderUseCase:   reorderUseCase,
		addSubUseCase:    addSubUseCase,
		renameSubUseCase: renameSubUseCase,
		deleteSubUseCase: deleteSubUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	input := category.ListCategoriesInput{}

	// Filter by category type if provided
	if categoryType := ctx.Query("type"); categoryType != "" {
		catType := entity.CategoryType(categoryType)
		input.Type = &catType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	response := dto.ToCategoryListResponse(output.Categories)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.CreateCategoryInput{
		Name:          req.Name,
		Color:         req.Color,
		Type:          entity.CategoryType(req.Type),
		Subcategories: req.Subcategories,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	response := dto.ToCategoryResponse(output.Category)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateCategoryInput{
		ID:    categoryID,
		Name:  req.Name,
		Color: req.Color,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	response := dto.ToCategoryResponse(output.Category)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: categoryID}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles POST /categories/:id/reorder requests.
// It moves the category one position up or down within its type group.
func (c *CategoryController) Reorder(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.ReorderCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.ReorderCategoryInput{
		ID:        categoryID,
		Direction: category.MoveDirection(req.Direction),
	}

	if err := c.reorderUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddSubcategory handles POST /categories/:id/subcategories requests.
func (c *CategoryController) AddSubcategory(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.SubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.AddSubcategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
	}

	output, err := c.addSubUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	response := dto.ToCategoryResponse(output.Category)
	ctx.JSON(http.StatusCreated, response)
}

// RenameSubcategory handles PATCH /categories/:id/subcategories/:subId requests.
func (c *CategoryController) RenameSubcategory(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	subcategoryID, err := uuid.Parse(ctx.Param("subId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subcategory ID format",
		})
		return
	}

	var req dto.SubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateSubcategoryInput{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Name:          req.Name,
	}

	output, err := c.renameSubUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	response := dto.ToCategoryResponse(output.Category)
	ctx.JSON(http.StatusOK, response)
}

// DeleteSubcategory handles DELETE /categories/:id/subcategories/:subId requests.
func (c *CategoryController) DeleteSubcategory(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	subcategoryID, err := uuid.Parse(ctx.Param("subId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subcategory ID format",
		})
		return
	}

	input := category.DeleteSubcategoryInput{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	}

	output, err := c.deleteSubUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	response := dto.ToCategoryResponse(output.Category)
	ctx.JSON(http.StatusOK, response)
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := c.getStatusCodeForCategoryError(catErr.Code)
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

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeSubcategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidColorFormat,
		domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeInvalidMoveDirection:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
