// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/moneytree/backend/config"
	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/application/usecase/analytics"
	"github.com/moneytree/backend/internal/application/usecase/insight"
	"github.com/moneytree/backend/internal/application/usecase/ledger"
	"github.com/moneytree/backend/internal/application/usecase/workflow"
	"github.com/moneytree/backend/internal/infra/server/router"
	"github.com/moneytree/backend/internal/integration/adapters"
	"github.com/moneytree/backend/internal/integration/entrypoint/controller"
	"github.com/moneytree/backend/internal/integration/entrypoint/middleware"
	"github.com/moneytree/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  *ledger.Store
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The health checkers are passed in because the connections are owned by main.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealth, cacheHealth func() bool) *Injector {
	// Create repositories
	ledgerRepo := persistence.NewLedgerRepository(db)
	insightCacheRepo := persistence.NewInsightCacheRepository(redisClient, cfg.Insights.CacheTTL)

	// Create adapters/services
	var advisor adapter.AIAdvisor = adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// Create the ledger store and its use cases
	store := ledger.NewStore(ledgerRepo)
	addTransactionUseCase := ledger.NewAddTransactionUseCase(store)
	listHistoryUseCase := ledger.NewListHistoryUseCase(store)
	updateAllowanceUseCase := ledger.NewUpdateAllowanceUseCase(store)

	// Create analytics use cases
	getOverviewUseCase := analytics.NewGetOverviewUseCase(store)
	getSummaryUseCase := analytics.NewGetSummaryUseCase(store)

	// Create insight use case
	getInsightsUseCase := insight.NewGetInsightsUseCase(store, insightCacheRepo, advisor, cfg.Gemini.Timeout)

	// Create workflow use cases
	sessionManager := workflow.NewSessionManager()
	startSessionUseCase := workflow.NewStartSessionUseCase(sessionManager)
	getSessionUseCase := workflow.NewGetSessionUseCase(sessionManager)
	submitAmountUseCase := workflow.NewSubmitAmountUseCase(sessionManager)
	selectTypeUseCase := workflow.NewSelectTypeUseCase(sessionManager)
	submitContextUseCase := workflow.NewSubmitContextUseCase(sessionManager, advisor, cfg.Gemini.Timeout)
	selectIncomeSourceUseCase := workflow.NewSelectIncomeSourceUseCase(sessionManager, addTransactionUseCase)
	scanBillUseCase := workflow.NewScanBillUseCase(sessionManager, advisor, cfg.Gemini.Timeout)
	confirmUseCase := workflow.NewConfirmUseCase(sessionManager, addTransactionUseCase)
	restartUseCase := workflow.NewRestartUseCase(sessionManager)
	cancelUseCase := workflow.NewCancelUseCase(sessionManager)

	// Create controllers
	healthController := controller.NewHealthController(dbHealth, cacheHealth)
	dashboardController := controller.NewDashboardController(getOverviewUseCase, getSummaryUseCase)
	transactionController := controller.NewTransactionController(listHistoryUseCase, updateAllowanceUseCase)
	insightController := controller.NewInsightController(getInsightsUseCase)
	workflowController := controller.NewWorkflowController(
		startSessionUseCase,
		getSessionUseCase,
		submitAmountUseCase,
		selectTypeUseCase,
		submitContextUseCase,
		selectIncomeSourceUseCase,
		scanBillUseCase,
		confirmUseCase,
		restartUseCase,
		cancelUseCase,
	)

	// Rate limit the endpoints that reach the AI advisor
	advisorRateLimiter := middleware.NewRateLimiter()

	appRouter := router.NewRouter(
		healthController,
		dashboardController,
		transactionController,
		insightController,
		workflowController,
		advisorRateLimiter,
	)

	return &Injector{
		Config: cfg,
		Store:  store,
		Router: appRouter,
	}
}
