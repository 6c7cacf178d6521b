package dto

import (
	"time"

	"github.com/moneytree/backend/internal/application/usecase/analytics"
)

// DashboardResponse represents the home-view figures.
type DashboardResponse struct {
	Balance          string                `json:"balance"`
	MonthlyAllowance string                `json:"monthly_allowance"`
	SpentToday       string                `json:"spent_today"`
	Recent           []TransactionResponse `json:"recent"`
}

// CategoryTotalResponse represents one category slice of the spending
// distribution.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Total    string `json:"total"`
}

// SocialSplitResponse represents the shared-versus-solo expense split.
type SocialSplitResponse struct {
	Social     string `json:"social"`
	Solo       string `json:"solo"`
	Percentage int    `json:"percentage"`
}

// TrendEntryResponse represents one day of the spending trend.
type TrendEntryResponse struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
	Total string    `json:"total"`
}

// AnalyticsResponse represents the full analytics view.
type AnalyticsResponse struct {
	TotalSpent    string                  `json:"total_spent"`
	Breakdown     []CategoryTotalResponse `json:"breakdown"`
	Profile       []CategoryTotalResponse `json:"profile"`
	Social        SocialSplitResponse     `json:"social"`
	Trend         []TrendEntryResponse    `json:"trend"`
	TopCategory   string                  `json:"top_category"`
	WeeklyAverage string                  `json:"weekly_average"`
	DailyBurn     string                  `json:"daily_burn"`
	AvailableCash string                  `json:"available_cash"`
}

// ToDashboardResponse converts a GetOverview output to a DashboardResponse DTO.
func ToDashboardResponse(output *analytics.GetOverviewOutput) DashboardResponse {
	return DashboardResponse{
		Balance:          output.Balance.String(),
		MonthlyAllowance: output.MonthlyAllowance.String(),
		SpentToday:       output.SpentToday.String(),
		Recent:           ToTransactionResponses(output.Recent),
	}
}

func toCategoryTotalResponses(totals []analytics.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		responses = append(responses, CategoryTotalResponse{
			Category: string(total.Category),
			Color:    total.Category.DisplayColor(),
			Total:    total.Total.String(),
		})
	}
	return responses
}

// ToAnalyticsResponse converts a GetSummary output to an AnalyticsResponse DTO.
func ToAnalyticsResponse(output *analytics.GetSummaryOutput) AnalyticsResponse {
	trend := make([]TrendEntryResponse, 0, len(output.Trend))
	for _, day := range output.Trend {
		trend = append(trend, TrendEntryResponse{
			Label: day.Label,
			Date:  day.Date,
			Total: day.Total.String(),
		})
	}

	return AnalyticsResponse{
		TotalSpent:    output.TotalSpent.String(),
		Breakdown:     toCategoryTotalResponses(output.Breakdown),
		Profile:       toCategoryTotalResponses(output.Profile),
		Social: SocialSplitResponse{
			Social:     output.Social.Social.String(),
			Solo:       output.Social.Solo.String(),
			Percentage: output.Social.Percentage,
		},
		Trend:         trend,
		TopCategory:   output.TopCategory,
		WeeklyAverage: output.WeeklyAverage.String(),
		DailyBurn:     output.DailyBurn.String(),
		AvailableCash: output.AvailableCash.String(),
	}
}
