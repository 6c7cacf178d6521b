// Package analytics contains the read-only derivation engine.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
)

// TrendDays is the length of the spending trend window.
const TrendDays = 7

// StateSource provides read-only access to the current ledger state.
type StateSource interface {
	Snapshot() entity.UserState
}

// GetSummaryInput represents the input for the analytics view.
type GetSummaryInput struct {
	// Now anchors the calendar-day derivations; the zero value means the
	// current local time.
	Now time.Time
}

// GetSummaryOutput represents the full derivation set for the analytics view.
type GetSummaryOutput struct {
	TotalSpent    decimal.Decimal
	Breakdown     []CategoryTotal
	Profile       []CategoryTotal
	Social        SocialSplit
	Trend         []DayTotal
	TopCategory   string
	WeeklyAverage decimal.Decimal
	DailyBurn     decimal.Decimal
	AvailableCash decimal.Decimal
}

// GetSummaryUseCase recomputes every aggregate from the current ledger state.
type GetSummaryUseCase struct {
	source StateSource
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(source StateSource) *GetSummaryUseCase {
	return &GetSummaryUseCase{source: source}
}

// Execute derives the analytics aggregates.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	state := uc.source.Snapshot()
	totalSpent := TotalExpense(state.Transactions)

	topCategory := "N/A"
	if category, ok := TopCategory(state.Transactions); ok {
		topCategory = string(category)
	}

	return &GetSummaryOutput{
		TotalSpent:    totalSpent,
		Breakdown:     CategoryTotals(state.Transactions),
		Profile:       CategoryProfile(state.Transactions),
		Social:        SplitSocial(state.Transactions),
		Trend:         Trend(state.Transactions, now, TrendDays),
		TopCategory:   topCategory,
		WeeklyAverage: WeeklyAverage(totalSpent),
		DailyBurn:     DailyBurn(totalSpent),
		AvailableCash: AvailableCash(state.MonthlyAllowance, totalSpent),
	}, nil
}
