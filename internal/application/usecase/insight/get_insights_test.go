package insight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
	domainerror "github.com/moneytree/backend/internal/domain/error"
)

type fakeCache struct {
	cached    adapter.CachedInsights
	found     bool
	loadErr   error
	saveErr   error
	saveCount int
}

func (c *fakeCache) Load(ctx context.Context) (adapter.CachedInsights, bool, error) {
	if c.loadErr != nil {
		return adapter.CachedInsights{}, false, c.loadErr
	}
	return c.cached, c.found, nil
}

func (c *fakeCache) Save(ctx context.Context, cached adapter.CachedInsights) error {
	c.saveCount++
	if c.saveErr != nil {
		return c.saveErr
	}
	c.cached = cached
	c.found = true
	return nil
}

type fakeAdvisor struct {
	insights []entity.AIInsight
	err      error
	calls    int
	recent   []entity.Transaction
}

func (a *fakeAdvisor) Categorize(ctx context.Context, amount decimal.Decimal, contextText string) (*adapter.CategorizationResult, error) {
	return nil, errors.New("not used")
}

func (a *fakeAdvisor) ExtractBill(ctx context.Context, imageBytes []byte) (*adapter.BillExtractionResult, error) {
	return nil, errors.New("not used")
}

func (a *fakeAdvisor) GenerateInsights(ctx context.Context, recent []entity.Transaction, balance decimal.Decimal) ([]entity.AIInsight, error) {
	a.calls++
	a.recent = recent
	if a.err != nil {
		return nil, a.err
	}
	return a.insights, nil
}

func (a *fakeAdvisor) IsAvailable() bool {
	return true
}

type fixedSource struct {
	state entity.UserState
}

func (s fixedSource) Snapshot() entity.UserState {
	return s.state
}

func stateWith(balance int64, txns ...entity.Transaction) entity.UserState {
	return entity.UserState{
		Balance:          decimal.NewFromInt(balance),
		MonthlyAllowance: decimal.NewFromInt(5000),
		Transactions:     txns,
	}
}

func txnAt(ts time.Time) entity.Transaction {
	return entity.Transaction{
		ID:          uuid.New(),
		Amount:      decimal.NewFromInt(100),
		Type:        entity.TransactionTypeExpense,
		Category:    entity.CategoryFood,
		SubCategory: "Lunch",
		Timestamp:   ts,
	}
}

func sampleInsights() []entity.AIInsight {
	return []entity.AIInsight{
		{Title: "Chai economy", Message: "Four chais a day adds up.", Type: entity.InsightTypeWarning},
		{Title: "Solid saving", Message: "You spent less than last week.", Type: entity.InsightTypeSuccess},
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		fp := Fingerprint(stateWith(5000))
		if fp.TransactionCount != 0 || fp.NewestTimestamp != 0 {
			t.Errorf("expected zero count and timestamp, got %+v", fp)
		}
		if fp.Balance != "5000" {
			t.Errorf("expected balance 5000, got %q", fp.Balance)
		}
	})

	t.Run("newest transaction drives the timestamp", func(t *testing.T) {
		head := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
		state := stateWith(4000, txnAt(head), txnAt(head.Add(-time.Hour)))
		fp := Fingerprint(state)
		if fp.TransactionCount != 2 {
			t.Errorf("expected count 2, got %d", fp.TransactionCount)
		}
		if fp.NewestTimestamp != head.UnixMilli() {
			t.Errorf("expected head timestamp %d, got %d", head.UnixMilli(), fp.NewestTimestamp)
		}
	})
}

func TestGetInsightsUseCase_CacheHit(t *testing.T) {
	state := stateWith(4000, txnAt(time.Now()))
	cache := &fakeCache{
		cached: adapter.CachedInsights{Fingerprint: Fingerprint(state), Insights: sampleInsights()},
		found:  true,
	}
	advisor := &fakeAdvisor{}
	uc := NewGetInsightsUseCase(fixedSource{state}, cache, advisor, time.Second)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.FromCache {
		t.Error("expected FromCache on an unchanged fingerprint")
	}
	if len(output.Insights) != 2 {
		t.Errorf("expected 2 cached insights, got %d", len(output.Insights))
	}
	if advisor.calls != 0 {
		t.Error("expected advisor untouched on a cache hit")
	}
}

func TestGetInsightsUseCase_MissGeneratesAndCaches(t *testing.T) {
	state := stateWith(4000, txnAt(time.Now()))
	cache := &fakeCache{}
	advisor := &fakeAdvisor{insights: sampleInsights()}
	uc := NewGetInsightsUseCase(fixedSource{state}, cache, advisor, time.Second)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.FromCache {
		t.Error("expected a fresh generation, not the cache")
	}
	if advisor.calls != 1 {
		t.Errorf("expected one advisor call, got %d", advisor.calls)
	}
	if cache.saveCount != 1 {
		t.Errorf("expected one cache write, got %d", cache.saveCount)
	}
	if cache.cached.Fingerprint != Fingerprint(state) {
		t.Error("expected the current fingerprint cached alongside the insights")
	}
}

func TestGetInsightsUseCase_FingerprintChangeRefreshes(t *testing.T) {
	oldState := stateWith(4000, txnAt(time.Now().Add(-time.Hour)))
	newState := stateWith(3800, txnAt(time.Now()), txnAt(time.Now().Add(-time.Hour)))

	cache := &fakeCache{
		cached: adapter.CachedInsights{Fingerprint: Fingerprint(oldState), Insights: sampleInsights()},
		found:  true,
	}
	advisor := &fakeAdvisor{insights: []entity.AIInsight{
		{Title: "Fresh take", Message: "New spend pattern spotted.", Type: entity.InsightTypeInfo},
	}}
	uc := NewGetInsightsUseCase(fixedSource{newState}, cache, advisor, time.Second)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.FromCache {
		t.Error("expected a refresh after the ledger changed")
	}
	if advisor.calls != 1 {
		t.Errorf("expected one advisor call, got %d", advisor.calls)
	}
	if len(output.Insights) != 1 || output.Insights[0].Title != "Fresh take" {
		t.Errorf("expected the regenerated insights, got %+v", output.Insights)
	}
}

func TestGetInsightsUseCase_AdvisorFailure(t *testing.T) {
	state := stateWith(4000, txnAt(time.Now()))

	t.Run("stale cache is served", func(t *testing.T) {
		oldState := stateWith(4200, txnAt(time.Now().Add(-time.Hour)))
		cache := &fakeCache{
			cached: adapter.CachedInsights{Fingerprint: Fingerprint(oldState), Insights: sampleInsights()},
			found:  true,
		}
		advisor := &fakeAdvisor{err: errors.New("model unavailable")}
		uc := NewGetInsightsUseCase(fixedSource{state}, cache, advisor, time.Second)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("expected stale insights instead of an error, got %v", err)
		}
		if !output.FromCache {
			t.Error("expected stale output marked as cached")
		}
		if len(output.Insights) != 2 {
			t.Errorf("expected the stale insight pair, got %d", len(output.Insights))
		}
	})

	t.Run("empty cache surfaces the error", func(t *testing.T) {
		cache := &fakeCache{}
		advisor := &fakeAdvisor{err: errors.New("model unavailable")}
		uc := NewGetInsightsUseCase(fixedSource{state}, cache, advisor, time.Second)

		_, err := uc.Execute(context.Background())
		var insightErr *domainerror.InsightError
		if !errors.As(err, &insightErr) {
			t.Fatalf("expected an InsightError, got %v", err)
		}
		if insightErr.Code != domainerror.ErrCodeInsightsUnavailable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInsightsUnavailable, insightErr.Code)
		}
	})
}

func TestGetInsightsUseCase_CacheReadFailureDegradesToMiss(t *testing.T) {
	state := stateWith(4000, txnAt(time.Now()))
	cache := &fakeCache{loadErr: errors.New("redis down")}
	advisor := &fakeAdvisor{insights: sampleInsights()}
	uc := NewGetInsightsUseCase(fixedSource{state}, cache, advisor, time.Second)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.FromCache {
		t.Error("expected a fresh generation when the cache cannot be read")
	}
	if advisor.calls != 1 {
		t.Errorf("expected one advisor call, got %d", advisor.calls)
	}
}

func TestGetInsightsUseCase_CacheWriteFailureIsNonFatal(t *testing.T) {
	state := stateWith(4000, txnAt(time.Now()))
	cache := &fakeCache{saveErr: errors.New("redis down")}
	advisor := &fakeAdvisor{insights: sampleInsights()}
	uc := NewGetInsightsUseCase(fixedSource{state}, cache, advisor, time.Second)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected the write failure swallowed, got %v", err)
	}
	if len(output.Insights) != 2 {
		t.Errorf("expected the generated insights, got %d", len(output.Insights))
	}
}

func TestGetInsightsUseCase_RecentWindowCapped(t *testing.T) {
	txns := make([]entity.Transaction, 0, RecentLimit+10)
	now := time.Now()
	for i := 0; i < RecentLimit+10; i++ {
		txns = append(txns, txnAt(now.Add(-time.Duration(i)*time.Hour)))
	}
	state := stateWith(1000, txns...)

	cache := &fakeCache{}
	advisor := &fakeAdvisor{insights: sampleInsights()}
	uc := NewGetInsightsUseCase(fixedSource{state}, cache, advisor, time.Second)

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(advisor.recent) != RecentLimit {
		t.Errorf("expected the advisor window capped at %d, got %d", RecentLimit, len(advisor.recent))
	}
	if !advisor.recent[0].Timestamp.Equal(now) {
		t.Error("expected the newest transaction first in the advisor window")
	}
}
