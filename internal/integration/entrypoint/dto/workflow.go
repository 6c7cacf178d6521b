package dto

import (
	"github.com/moneytree/backend/internal/application/usecase/workflow"
)

// =============================================================================
// Request DTOs
// =============================================================================

// SubmitAmountRequest represents the request body for the amount step.
type SubmitAmountRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// SelectTypeRequest represents the request body for the type-selection step.
type SelectTypeRequest struct {
	Type string `json:"type" binding:"required,oneof=expense income"`
}

// SubmitContextRequest represents the request body for the expense-context
// step. Context carries either free text or a quick-pick label.
type SubmitContextRequest struct {
	Context string `json:"context" binding:"required"`
}

// SelectIncomeSourceRequest represents the request body for the income-source
// step.
type SelectIncomeSourceRequest struct {
	Source string `json:"source" binding:"required,oneof=parents friends other"`
}

// ScanBillRequest represents the request body for the bill-scan entry point.
// Image is the base64-encoded bill photo.
type ScanBillRequest struct {
	Image string `json:"image" binding:"required"`
}

// ConfirmRequest represents the request body for the confirmation step.
type ConfirmRequest struct {
	SubCategory  string `json:"sub_category,omitempty"`
	IsForFriends bool   `json:"is_for_friends,omitempty"`
}

// =============================================================================
// Response DTOs
// =============================================================================

// SuggestionResponse represents the categorization proposal shown on the
// confirmation step.
type SuggestionResponse struct {
	Category     string   `json:"category"`
	SubCategory  string   `json:"sub_category"`
	Question     string   `json:"question"`
	BillItems    []string `json:"bill_items,omitempty"`
	FromFallback bool     `json:"from_fallback"`
}

// SessionResponse represents the current workflow session snapshot.
type SessionResponse struct {
	ID         string              `json:"id"`
	State      string              `json:"state"`
	Amount     string              `json:"amount"`
	Type       string              `json:"type,omitempty"`
	Context    string              `json:"context,omitempty"`
	Suggestion *SuggestionResponse `json:"suggestion,omitempty"`
}

// CommitResponse represents a workflow step that committed a transaction.
type CommitResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     string              `json:"balance"`
}

// QuickOptionResponse represents one fixed expense quick-pick.
type QuickOptionResponse struct {
	Label        string `json:"label"`
	CategoryHint string `json:"category_hint"`
}

// ToSessionResponse converts a workflow session to a SessionResponse DTO.
func ToSessionResponse(session workflow.Session) SessionResponse {
	response := SessionResponse{
		ID:      session.ID.String(),
		State:   string(session.State),
		Amount:  session.Amount.String(),
		Type:    string(session.Type),
		Context: session.Context,
	}
	if session.Suggestion != nil {
		response.Suggestion = &SuggestionResponse{
			Category:     string(session.Suggestion.Category),
			SubCategory:  session.Suggestion.SubCategory,
			Question:     session.Suggestion.Question,
			BillItems:    session.Suggestion.BillItems,
			FromFallback: session.Suggestion.FromFallback,
		}
	}
	return response
}

// ToQuickOptionResponses converts the fixed quick-pick set.
func ToQuickOptionResponses(options []workflow.QuickOption) []QuickOptionResponse {
	responses := make([]QuickOptionResponse, 0, len(options))
	for _, option := range options {
		responses = append(responses, QuickOptionResponse{
			Label:        option.Label,
			CategoryHint: string(option.CategoryHint),
		})
	}
	return responses
}
