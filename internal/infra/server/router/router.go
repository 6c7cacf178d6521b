// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/moneytree/backend/internal/integration/entrypoint/controller"
	"github.com/moneytree/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	dashboardController   *controller.DashboardController
	transactionController *controller.TransactionController
	insightController     *controller.InsightController
	workflowController    *controller.WorkflowController
	advisorRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	transactionController *controller.TransactionController,
	insightController *controller.InsightController,
	workflowController *controller.WorkflowController,
	advisorRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		dashboardController:   dashboardController,
		transactionController: transactionController,
		insightController:     insightController,
		workflowController:    workflowController,
		advisorRateLimiter:    advisorRateLimiter,
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
		v1.GET("/dashboard", r.dashboardController.GetDashboard)
		v1.GET("/analytics", r.dashboardController.GetAnalytics)
		v1.GET("/insights", r.advisorRateLimiter.Middleware(), r.insightController.GetInsights)

		v1.GET("/transactions", r.transactionController.List)
		v1.PUT("/allowance", r.transactionController.UpdateAllowance)

		workflow := v1.Group("/workflow")
		{
			workflow.POST("", r.workflowController.Start)
			workflow.GET("/quick-options", r.workflowController.QuickOptions)
			workflow.GET("/:id", r.workflowController.Get)
			workflow.POST("/:id/amount", r.workflowController.SubmitAmount)
			workflow.POST("/:id/type", r.workflowController.SelectType)
			workflow.POST("/:id/context", r.advisorRateLimiter.Middleware(), r.workflowController.SubmitContext)
			workflow.POST("/:id/income-source", r.workflowController.SelectIncomeSource)
			workflow.POST("/:id/scan", r.advisorRateLimiter.Middleware(), r.workflowController.ScanBill)
			workflow.POST("/:id/confirm", r.workflowController.Confirm)
			workflow.POST("/:id/restart", r.workflowController.Restart)
			workflow.DELETE("/:id", r.workflowController.Cancel)
		}
	}
}
