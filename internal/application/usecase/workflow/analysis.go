// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
)

// DefaultAnalysisTimeout bounds a single advisor call. Expiry is treated as a
// categorization failure and lands on the fallback suggestion.
const DefaultAnalysisTimeout = 30 * time.Second

// fallbackSuggestion is the fixed recovery content when categorization fails:
// the workflow never dead-ends and never surfaces the raw error here.
func fallbackSuggestion() Suggestion {
	return Suggestion{
		Category:     fallbackCategory,
		SubCategory:  fallbackSubCategory,
		Question:     fallbackQuestion,
		FromFallback: true,
	}
}

const (
	fallbackCategory    = entity.CategoryMiscellaneous
	fallbackSubCategory = "General"
	fallbackQuestion    = "Adding this to the log. Sounds good?"
)

// analysisRunner executes advisor calls off the request path and installs
// their outcome through the session manager's generation guard.
type analysisRunner struct {
	manager *SessionManager
	advisor adapter.AIAdvisor
	timeout time.Duration
}

func newAnalysisRunner(manager *SessionManager, advisor adapter.AIAdvisor, timeout time.Duration) analysisRunner {
	if timeout <= 0 {
		timeout = DefaultAnalysisTimeout
	}
	return analysisRunner{
		manager: manager,
		advisor: advisor,
		timeout: timeout,
	}
}

// runCategorize asks the advisor to classify a free-text expense.
func (r analysisRunner) runCategorize(sessionID uuid.UUID, generation uint64, amount decimal.Decimal, contextText string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	suggestion := fallbackSuggestion()
	result, err := r.advisor.Categorize(ctx, amount, contextText)
	if err != nil {
		slog.Debug("Advisor categorization failed, using fallback",
			"sessionID", sessionID,
			"error", err,
		)
	} else {
		suggestion = Suggestion{
			Category:    result.Category,
			SubCategory: result.SubCategory,
			Question:    result.Question,
		}
	}

	if !r.manager.completeAnalysis(sessionID, generation, suggestion, nil) {
		slog.Debug("Dropped stale categorization result", "sessionID", sessionID)
	}
}

// runExtractBill asks the advisor to read a photographed bill. On success the
// extracted amount overwrites whatever was typed on the amount step. On
// failure there is no amount to confirm, so the session reopens for manual
// entry instead of landing on a confirmation that could never commit.
func (r analysisRunner) runExtractBill(sessionID uuid.UUID, generation uint64, imageBytes []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	result, err := r.advisor.ExtractBill(ctx, imageBytes)
	if err != nil {
		slog.Debug("Bill extraction failed, reopening amount entry",
			"sessionID", sessionID,
			"error", err,
		)
		if !r.manager.failAnalysis(sessionID, generation) {
			slog.Debug("Dropped stale bill extraction failure", "sessionID", sessionID)
		}
		return
	}

	suggestion := Suggestion{
		Category:    result.Category,
		SubCategory: result.SubCategory,
		Question:    "Found a bill for " + result.SubCategory + ". Correct?",
		BillItems:   result.Items,
	}
	if !r.manager.completeAnalysis(sessionID, generation, suggestion, &result.Amount) {
		slog.Debug("Dropped stale bill extraction result", "sessionID", sessionID)
	}
}
