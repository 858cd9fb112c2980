// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/batchflow/backend/internal/integration/entrypoint/controller"
	"github.com/batchflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	recurringController   *controller.RecurringController
	dashboardController   *controller.DashboardController
	writeRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	recurringController *controller.RecurringController,
	dashboardController *controller.DashboardController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		transactionController: transactionController,
		budgetController:      budgetController,
		recurringController:   recurringController,
		dashboardController:   dashboardController,
		writeRateLimiter:      writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Category routes
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
				categories.POST("/:id/reorder", r.categoryController.Reorder)
				categories.POST("/:id/subcategories", r.categoryController.AddSubcategory)
				categories.PATCH("/:id/subcategories/:subId", r.categoryController.RenameSubcategory)
				categories.DELETE("/:id/subcategories/:subId", r.categoryController.DeleteSubcategory)
			}
		}

		// Transaction routes
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Budget routes
		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("/:month", r.budgetController.GetMonthOverview)
				budgets.POST("/:month", r.budgetController.InitializeMonth)
				budgets.PUT("/:month/amounts", r.budgetController.SetPlannedAmount)
				budgets.POST("/:month/copy", r.budgetController.CopyBudget)
			}
		}

		// Recurring rule routes; materialization is rate limited since it
		// can fan out into many writes
		if r.recurringController != nil {
			recurring := v1.Group("/recurring")
			{
				recurring.GET("", r.recurringController.List)
				recurring.POST("", r.recurringController.Create)
				recurring.PATCH("/:id", r.recurringController.Update)
				recurring.DELETE("/:id", r.recurringController.Delete)
				recurring.PATCH("/:id/paused", r.recurringController.SetPaused)
				if r.writeRateLimiter != nil {
					recurring.POST("/materialize/:month", r.writeRateLimiter.Middleware(), r.recurringController.Materialize)
				} else {
					recurring.POST("/materialize/:month", r.recurringController.Materialize)
				}
			}
		}

		// Dashboard routes
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.GetMonthlySummary)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
