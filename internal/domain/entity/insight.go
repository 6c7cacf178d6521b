// Package entity defines the core business entities for the domain layer.
package entity

// InsightType classifies the tone of a generated insight.
type InsightType string

const (
	InsightTypeWarning InsightType = "warning"
	InsightTypeInfo    InsightType = "info"
	InsightTypeSuccess InsightType = "success"
)

// Valid reports whether t is a known insight type.
func (t InsightType) Valid() bool {
	return t == InsightTypeWarning || t == InsightTypeInfo || t == InsightTypeSuccess
}

// AIInsight is a narrative observation produced by the AI advisor. Insights
// are a disposable presentation cache, never part of the ledger.
type AIInsight struct {
	Title   string
	Message string
	Type    InsightType
}
