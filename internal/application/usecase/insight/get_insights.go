// Package insight contains the fingerprint-gated insight cache use case.
package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
	domainerror "github.com/moneytree/backend/internal/domain/error"
)

// RecentLimit caps how many transactions are sent to the advisor.
const RecentLimit = 30

// DefaultAdvisorTimeout bounds a single insight-generation call.
const DefaultAdvisorTimeout = 30 * time.Second

// StateSource provides read-only access to the current ledger state.
type StateSource interface {
	Snapshot() entity.UserState
}

// GetInsightsOutput represents the insight view data.
type GetInsightsOutput struct {
	Insights  []entity.AIInsight
	FromCache bool
}

// GetInsightsUseCase memoizes advisor-generated insights behind a coarse
// content fingerprint so an unchanged ledger never triggers a second call.
type GetInsightsUseCase struct {
	source  StateSource
	cache   adapter.InsightCacheRepository
	advisor adapter.AIAdvisor
	timeout time.Duration
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(source StateSource, cache adapter.InsightCacheRepository, advisor adapter.AIAdvisor, timeout time.Duration) *GetInsightsUseCase {
	if timeout <= 0 {
		timeout = DefaultAdvisorTimeout
	}
	return &GetInsightsUseCase{
		source:  source,
		cache:   cache,
		advisor: advisor,
		timeout: timeout,
	}
}

// Fingerprint derives the change-detection key from the ledger state.
func Fingerprint(state entity.UserState) adapter.InsightFingerprint {
	fingerprint := adapter.InsightFingerprint{
		TransactionCount: len(state.Transactions),
		Balance:          state.Balance.String(),
	}
	if len(state.Transactions) > 0 {
		fingerprint.NewestTimestamp = state.Transactions[0].Timestamp.UnixMilli()
	}
	return fingerprint
}

// Execute returns the cached insight sequence when the fingerprint is
// unchanged, otherwise asks the advisor and refreshes the cache. When the
// advisor fails the cache is left untouched: stale insights, if any, are
// returned instead of an error.
func (uc *GetInsightsUseCase) Execute(ctx context.Context) (*GetInsightsOutput, error) {
	state := uc.source.Snapshot()
	fingerprint := Fingerprint(state)

	cached, found, err := uc.cache.Load(ctx)
	if err != nil {
		// Cache read failures degrade to a miss.
		slog.Debug("Insight cache read failed", "error", err)
		found = false
	}

	if found && cached.Fingerprint == fingerprint {
		return &GetInsightsOutput{Insights: cached.Insights, FromCache: true}, nil
	}

	recent := state.Transactions
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	insights, err := uc.advisor.GenerateInsights(callCtx, recent, state.Balance)
	if err != nil {
		if found {
			slog.Debug("Advisor insight generation failed, serving stale cache", "error", err)
			return &GetInsightsOutput{Insights: cached.Insights, FromCache: true}, nil
		}
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightsUnavailable,
			"insights unavailable",
			err,
		)
	}

	if err := uc.cache.Save(ctx, adapter.CachedInsights{
		Fingerprint: fingerprint,
		Insights:    insights,
	}); err != nil {
		// A failed cache write only costs a future refresh.
		slog.Debug("Insight cache write failed", "error", err)
	}

	return &GetInsightsOutput{Insights: insights, FromCache: false}, nil
}
