package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneytree/backend/internal/application/usecase/analytics"
	"github.com/moneytree/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the home and analytics views.
type DashboardController struct {
	getOverviewUseCase *analytics.GetOverviewUseCase
	getSummaryUseCase  *analytics.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getOverviewUseCase *analytics.GetOverviewUseCase,
	getSummaryUseCase *analytics.GetSummaryUseCase,
) *DashboardController {
	return &DashboardController{
		getOverviewUseCase: getOverviewUseCase,
		getSummaryUseCase:  getSummaryUseCase,
	}
}

// GetDashboard handles GET /dashboard requests.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), analytics.GetOverviewInput{})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetAnalytics handles GET /analytics requests.
func (c *DashboardController) GetAnalytics(ctx *gin.Context) {
	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), analytics.GetSummaryInput{})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}
