package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func cachedFixture() adapter.CachedInsights {
	return adapter.CachedInsights{
		Fingerprint: adapter.InsightFingerprint{
			TransactionCount: 4,
			NewestTimestamp:  1742034600000,
			Balance:          "4370",
		},
		Insights: []entity.AIInsight{
			{Title: "Chai economy", Message: "Four chais a day adds up.", Type: entity.InsightTypeWarning},
			{Title: "Solid week", Message: "Spending held steady.", Type: entity.InsightTypeSuccess},
		},
	}
}

func TestInsightCacheRepository_LoadMissing(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewInsightCacheRepository(client, 0)

	_, found, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected a miss on an empty cache")
	}
}

func TestInsightCacheRepository_SaveAndLoad(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewInsightCacheRepository(client, 0)
	ctx := context.Background()
	cached := cachedFixture()

	if err := repo.Save(ctx, cached); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, found, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if !found {
		t.Fatal("expected the cached entry back")
	}
	if loaded.Fingerprint != cached.Fingerprint {
		t.Errorf("expected fingerprint %+v, got %+v", cached.Fingerprint, loaded.Fingerprint)
	}
	if len(loaded.Insights) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(loaded.Insights))
	}
	if loaded.Insights[0] != cached.Insights[0] {
		t.Errorf("expected insight %+v, got %+v", cached.Insights[0], loaded.Insights[0])
	}
}

func TestInsightCacheRepository_SaveOverwrites(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewInsightCacheRepository(client, 0)
	ctx := context.Background()

	if err := repo.Save(ctx, cachedFixture()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	refreshed := adapter.CachedInsights{
		Fingerprint: adapter.InsightFingerprint{TransactionCount: 5, Balance: "4200"},
		Insights: []entity.AIInsight{
			{Title: "Fresh take", Message: "New pattern spotted.", Type: entity.InsightTypeInfo},
		},
	}
	if err := repo.Save(ctx, refreshed); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	loaded, found, err := repo.Load(ctx)
	if err != nil || !found {
		t.Fatalf("failed to load after overwrite: found=%v err=%v", found, err)
	}
	if loaded.Fingerprint.TransactionCount != 5 {
		t.Errorf("expected the refreshed fingerprint, got %+v", loaded.Fingerprint)
	}
	if len(loaded.Insights) != 1 || loaded.Insights[0].Title != "Fresh take" {
		t.Errorf("expected the refreshed insights, got %+v", loaded.Insights)
	}
}

func TestInsightCacheRepository_TTLExpiry(t *testing.T) {
	server, client := newTestRedis(t)
	repo := NewInsightCacheRepository(client, time.Minute)
	ctx := context.Background()

	if err := repo.Save(ctx, cachedFixture()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	server.FastForward(2 * time.Minute)

	_, found, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected the entry expired after the TTL")
	}
}

func TestInsightCacheRepository_CorruptPayload(t *testing.T) {
	server, client := newTestRedis(t)
	repo := NewInsightCacheRepository(client, 0)

	if err := server.Set(insightCacheKey, "{not json"); err != nil {
		t.Fatalf("failed to seed corrupt payload: %v", err)
	}

	_, _, err := repo.Load(context.Background())
	if err == nil {
		t.Error("expected a decode error for a corrupt payload")
	}
}
