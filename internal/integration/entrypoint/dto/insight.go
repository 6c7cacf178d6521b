package dto

import (
	"github.com/moneytree/backend/internal/application/usecase/insight"
)

// InsightResponse represents one generated insight card.
type InsightResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// InsightsResponse represents the insight view.
type InsightsResponse struct {
	Insights  []InsightResponse `json:"insights"`
	FromCache bool              `json:"from_cache"`
}

// ToInsightsResponse converts a GetInsights output to an InsightsResponse DTO.
func ToInsightsResponse(output *insight.GetInsightsOutput) InsightsResponse {
	insights := make([]InsightResponse, 0, len(output.Insights))
	for _, item := range output.Insights {
		insights = append(insights, InsightResponse{
			Title:   item.Title,
			Message: item.Message,
			Type:    string(item.Type),
		})
	}
	return InsightsResponse{
		Insights:  insights,
		FromCache: output.FromCache,
	}
}
