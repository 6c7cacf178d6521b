package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
)

const insightCacheKey = "moneytree:insights"

// insightCacheRepository implements adapter.InsightCacheRepository on Redis.
type insightCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCacheRepository creates a new insight cache repository instance.
// A zero TTL keeps entries until the next overwrite.
func NewInsightCacheRepository(client *redis.Client, ttl time.Duration) adapter.InsightCacheRepository {
	return &insightCacheRepository{
		client: client,
		ttl:    ttl,
	}
}

type cachedInsightsRecord struct {
	Fingerprint adapter.InsightFingerprint `json:"fingerprint"`
	Insights    []cachedInsight            `json:"insights"`
}

type cachedInsight struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Load reads the cached insight sequence.
func (r *insightCacheRepository) Load(ctx context.Context) (adapter.CachedInsights, bool, error) {
	raw, err := r.client.Get(ctx, insightCacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return adapter.CachedInsights{}, false, nil
		}
		return adapter.CachedInsights{}, false, fmt.Errorf("failed to read insight cache: %w", err)
	}

	var record cachedInsightsRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return adapter.CachedInsights{}, false, fmt.Errorf("failed to decode insight cache: %w", err)
	}

	insights := make([]entity.AIInsight, 0, len(record.Insights))
	for _, item := range record.Insights {
		insights = append(insights, entity.AIInsight{
			Title:   item.Title,
			Message: item.Message,
			Type:    entity.InsightType(item.Type),
		})
	}

	return adapter.CachedInsights{
		Fingerprint: record.Fingerprint,
		Insights:    insights,
	}, true, nil
}

// Save overwrites the cached insight sequence.
func (r *insightCacheRepository) Save(ctx context.Context, cached adapter.CachedInsights) error {
	record := cachedInsightsRecord{
		Fingerprint: cached.Fingerprint,
		Insights:    make([]cachedInsight, 0, len(cached.Insights)),
	}
	for _, item := range cached.Insights {
		record.Insights = append(record.Insights, cachedInsight{
			Title:   item.Title,
			Message: item.Message,
			Type:    string(item.Type),
		})
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode insight cache: %w", err)
	}

	if err := r.client.Set(ctx, insightCacheKey, encoded, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write insight cache: %w", err)
	}
	return nil
}
