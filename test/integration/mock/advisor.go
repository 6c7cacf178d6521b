package mock

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
)

var advisorOnce sync.Once
var advisor *Advisor

// Advisor is a scriptable in-process stand-in for the Gemini advisor. Each
// scenario resets it to a deterministic happy-path script; steps can override
// the script or force failures.
type Advisor struct {
	mu             sync.Mutex
	categorization adapter.CategorizationResult
	extraction     adapter.BillExtractionResult
	insights       []entity.AIInsight
	failure        error
	insightCalls   int
}

func NewAdvisor() *Advisor {
	if advisor == nil {
		advisorOnce.Do(
			func() {
				advisor = &Advisor{}
				advisor.Reset()
			},
		)
	}

	return advisor
}

// Reset restores the deterministic default script.
func (a *Advisor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.categorization = adapter.CategorizationResult{
		Category:    entity.CategoryFood,
		SubCategory: "Lunch",
		Question:    "Logging this lunch run?",
	}
	a.extraction = adapter.BillExtractionResult{
		Amount:      decimal.NewFromInt(340),
		Category:    entity.CategoryFood,
		SubCategory: "Dominos Pizza",
		Items:       []string{"Margherita", "Garlic Bread"},
	}
	a.insights = []entity.AIInsight{
		{Title: "Chai check", Message: "Three chais today. Brain fuel or habit?", Type: entity.InsightTypeInfo},
		{Title: "Social Investment", Message: "A third of this week went to plans with friends.", Type: entity.InsightTypeSuccess},
		{Title: "Burn watch", Message: "At this pace the allowance runs out on the 25th.", Type: entity.InsightTypeWarning},
	}
	a.failure = nil
	a.insightCalls = 0
}

// ScriptCategorization sets the suggestion returned for the next context
// submissions.
func (a *Advisor) ScriptCategorization(category entity.Category, subCategory, question string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.categorization = adapter.CategorizationResult{
		Category:    category,
		SubCategory: subCategory,
		Question:    question,
	}
}

// Fail makes every advisor call return the given error until the next Reset.
func (a *Advisor) Fail(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failure = err
}

// InsightCalls reports how many insight generations reached the advisor.
func (a *Advisor) InsightCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.insightCalls
}

func (a *Advisor) Categorize(ctx context.Context, amount decimal.Decimal, contextText string) (*adapter.CategorizationResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failure != nil {
		return nil, a.failure
	}
	result := a.categorization
	return &result, nil
}

func (a *Advisor) ExtractBill(ctx context.Context, imageBytes []byte) (*adapter.BillExtractionResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failure != nil {
		return nil, a.failure
	}
	result := a.extraction
	return &result, nil
}

func (a *Advisor) GenerateInsights(ctx context.Context, recent []entity.Transaction, balance decimal.Decimal) ([]entity.AIInsight, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.insightCalls++
	if a.failure != nil {
		return nil, a.failure
	}
	insights := make([]entity.AIInsight, len(a.insights))
	copy(insights, a.insights)
	return insights, nil
}

func (a *Advisor) IsAvailable() bool {
	return true
}
