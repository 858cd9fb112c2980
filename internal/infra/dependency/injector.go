// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/batchflow/backend/config"
	"github.com/batchflow/backend/internal/application/usecase/budget"
	"github.com/batchflow/backend/internal/application/usecase/category"
	"github.com/batchflow/backend/internal/application/usecase/dashboard"
	"github.com/batchflow/backend/internal/application/usecase/recurring"
	"github.com/batchflow/backend/internal/application/usecase/transaction"
	"github.com/batchflow/backend/internal/infra/server/router"
	"github.com/batchflow/backend/internal/integration/adapters"
	"github.com/batchflow/backend/internal/integration/cache"
	"github.com/batchflow/backend/internal/integration/entrypoint/controller"
	"github.com/batchflow/backend/internal/integration/entrypoint/middleware"
	"github.com/batchflow/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil; summaries are then always recomputed.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *slog.Logger) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	ruleRepo := persistence.NewRecurringRuleRepository(db)

	// Create adapters
	clock := adapters.NewSystemClock()
	summaryCache := cache.NewDisabledSummaryCache()
	if redisClient != nil {
		summaryCache = cache.NewSummaryCache(redisClient)
	}

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	reorderCategoryUseCase := category.NewReorderCategoryUseCase(categoryRepo)
	addSubcategoryUseCase := category.NewAddSubcategoryUseCase(categoryRepo)
	updateSubcategoryUseCase := category.NewUpdateSubcategoryUseCase(categoryRepo)
	deleteSubcategoryUseCase := category.NewDeleteSubcategoryUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create budget use cases
	getMonthOverviewUseCase := budget.NewGetMonthOverviewUseCase(categoryRepo, transactionRepo, budgetRepo)
	setPlannedAmountUseCase := budget.NewSetPlannedAmountUseCase(budgetRepo)
	initializeMonthUseCase := budget.NewInitializeMonthUseCase(budgetRepo)
	copyBudgetUseCase := budget.NewCopyBudgetUseCase(budgetRepo)

	// Create recurring use cases
	listRulesUseCase := recurring.NewListRulesUseCase(ruleRepo, clock)
	createRuleUseCase := recurring.NewCreateRuleUseCase(ruleRepo, categoryRepo)
	updateRuleUseCase := recurring.NewUpdateRuleUseCase(ruleRepo, categoryRepo)
	deleteRuleUseCase := recurring.NewDeleteRuleUseCase(ruleRepo)
	setPausedUseCase := recurring.NewSetPausedUseCase(ruleRepo)
	materializeMonthUseCase := recurring.NewMaterializeMonthUseCase(ruleRepo, transactionRepo)

	// Create dashboard use cases
	getMonthlySummaryUseCase := dashboard.NewGetMonthlySummaryUseCase(
		transactionRepo,
		budgetRepo,
		categoryRepo,
		summaryCache,
		logger,
	)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		reorderCategoryUseCase,
		addSubcategoryUseCase,
		updateSubcategoryUseCase,
		deleteSubcategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		getMonthOverviewUseCase,
		setPlannedAmountUseCase,
		initializeMonthUseCase,
		copyBudgetUseCase,
	)

	recurringController := controller.NewRecurringController(
		listRulesUseCase,
		createRuleUseCase,
		updateRuleUseCase,
		deleteRuleUseCase,
		setPausedUseCase,
		materializeMonthUseCase,
	)

	dashboardController := controller.NewDashboardController(getMonthlySummaryUseCase)

	// Create middleware
	// Use higher rate limits for the test environment to prevent flaky tests
	var writeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowDuration)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		budgetController,
		recurringController,
		dashboardController,
		writeRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
