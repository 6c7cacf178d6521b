// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
)

// CategorizationResult is the advisor's suggestion for a free-text expense.
type CategorizationResult struct {
	Category    entity.Category
	SubCategory string
	Question    string
}

// BillExtractionResult is the structured data the advisor reads off a
// photographed bill.
type BillExtractionResult struct {
	Amount      decimal.Decimal
	Category    entity.Category
	SubCategory string
	Items       []string
}

// AIAdvisor defines the contract with the external generative-AI service.
// Every operation is fallible and must be called with a bounded context;
// callers own the recovery behavior (workflow fallback, stale insight cache).
type AIAdvisor interface {
	// Categorize classifies a free-text expense description. The returned
	// category is always from the expense enumeration (never Income).
	Categorize(ctx context.Context, amount decimal.Decimal, contextText string) (*CategorizationResult, error)

	// ExtractBill reads the total amount, category, and line items from a
	// photographed bill.
	ExtractBill(ctx context.Context, imageBytes []byte) (*BillExtractionResult, error)

	// GenerateInsights produces a short sequence of supportive narrative
	// insights over the most recent transactions and the current balance.
	GenerateInsights(ctx context.Context, recent []entity.Transaction, balance decimal.Decimal) ([]entity.AIInsight, error)

	// IsAvailable checks if the advisor is configured.
	IsAvailable() bool
}
