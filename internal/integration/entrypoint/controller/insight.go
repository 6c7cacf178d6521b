package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneytree/backend/internal/application/usecase/insight"
	"github.com/moneytree/backend/internal/integration/entrypoint/dto"
)

// InsightController handles the AI insight endpoint.
type InsightController struct {
	getInsightsUseCase *insight.GetInsightsUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(getInsightsUseCase *insight.GetInsightsUseCase) *InsightController {
	return &InsightController{
		getInsightsUseCase: getInsightsUseCase,
	}
}

// GetInsights handles GET /insights requests.
func (c *InsightController) GetInsights(ctx *gin.Context) {
	output, err := c.getInsightsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}
