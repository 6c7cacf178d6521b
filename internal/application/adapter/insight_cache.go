// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/moneytree/backend/internal/domain/entity"
)

// InsightFingerprint is a coarse, cheap-to-compute proxy for "has the ledger
// changed since the cached insights were generated". It can miss changes that
// leave all three components equal and can false-positive on any new
// transaction; that is intentional best-effort memoization.
type InsightFingerprint struct {
	TransactionCount int    `json:"transaction_count"`
	NewestTimestamp  int64  `json:"newest_timestamp"`
	Balance          string `json:"balance"`
}

// CachedInsights pairs an insight sequence with the fingerprint it was
// generated for.
type CachedInsights struct {
	Fingerprint InsightFingerprint
	Insights    []entity.AIInsight
}

// InsightCacheRepository persists the last generated insight sequence as a
// durable entry independent from the ledger snapshot.
type InsightCacheRepository interface {
	// Load reads the cached insights. A missing entry is reported as
	// found=false, not an error.
	Load(ctx context.Context) (cached CachedInsights, found bool, err error)

	// Save overwrites the cached insights.
	Save(ctx context.Context, cached CachedInsights) error
}
