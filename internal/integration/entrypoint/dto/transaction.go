package dto

import (
	"time"

	"github.com/moneytree/backend/internal/application/usecase/ledger"
	"github.com/moneytree/backend/internal/domain/entity"
)

// =============================================================================
// Request DTOs
// =============================================================================

// UpdateAllowanceRequest represents the request body for changing the monthly
// allowance.
type UpdateAllowanceRequest struct {
	Allowance float64 `json:"allowance" binding:"required"`
}

// =============================================================================
// Response DTOs
// =============================================================================

// TransactionResponse represents a single committed transaction.
type TransactionResponse struct {
	ID            string    `json:"id"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	CategoryColor string    `json:"category_color"`
	SubCategory   string    `json:"sub_category"`
	Timestamp     time.Time `json:"timestamp"`
	Note          string    `json:"note,omitempty"`
	IsForFriends  bool      `json:"is_for_friends"`
}

// HistoryResponse represents the filtered transaction log.
type HistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// AllowanceResponse represents the allowance after an update.
type AllowanceResponse struct {
	Allowance string `json:"allowance"`
	Balance   string `json:"balance"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(txn entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.ID.String(),
		Amount:        txn.Amount.String(),
		Type:          string(txn.Type),
		Category:      string(txn.Category),
		CategoryColor: txn.Category.DisplayColor(),
		SubCategory:   txn.SubCategory,
		Timestamp:     txn.Timestamp,
		Note:          txn.Note,
		IsForFriends:  txn.IsForFriends,
	}
}

// ToTransactionResponses converts a transaction slice preserving order.
func ToTransactionResponses(txns []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, ToTransactionResponse(txn))
	}
	return responses
}

// ToHistoryResponse converts a ListHistory output to a HistoryResponse DTO.
func ToHistoryResponse(output *ledger.ListHistoryOutput) HistoryResponse {
	return HistoryResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Total:        output.Total,
	}
}

// ToAllowanceResponse converts an UpdateAllowance output to an
// AllowanceResponse DTO.
func ToAllowanceResponse(output *ledger.UpdateAllowanceOutput) AllowanceResponse {
	return AllowanceResponse{
		Allowance: output.Allowance.String(),
		Balance:   output.Balance.String(),
	}
}
