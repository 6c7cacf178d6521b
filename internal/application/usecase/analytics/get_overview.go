// Package analytics contains the read-only derivation engine.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
)

// recentLimit caps the transaction preview on the dashboard.
const recentLimit = 5

// GetOverviewInput represents the input for the dashboard view.
type GetOverviewInput struct {
	Now time.Time
}

// GetOverviewOutput represents the dashboard view data.
type GetOverviewOutput struct {
	Balance          decimal.Decimal
	MonthlyAllowance decimal.Decimal
	SpentToday       decimal.Decimal
	Recent           []entity.Transaction
}

// GetOverviewUseCase derives the dashboard figures from the ledger state.
type GetOverviewUseCase struct {
	source StateSource
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(source StateSource) *GetOverviewUseCase {
	return &GetOverviewUseCase{source: source}
}

// Execute derives the dashboard overview.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	state := uc.source.Snapshot()

	recent := state.Transactions
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return &GetOverviewOutput{
		Balance:          state.Balance,
		MonthlyAllowance: state.MonthlyAllowance,
		SpentToday:       SpendOn(state.Transactions, now),
		Recent:           recent,
	}, nil
}
