// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single committed entry in the ledger. Transactions
// are immutable once created; the amount is always a positive magnitude and
// the balance direction is determined solely by Type.
type Transaction struct {
	ID           uuid.UUID
	Amount       decimal.Decimal
	Type         TransactionType
	Category     Category
	SubCategory  string
	Timestamp    time.Time
	Note         string
	IsForFriends bool
}

// TransactionDraft carries the caller-supplied fields of a transaction before
// commit. ID and Timestamp are assigned by the ledger store at commit time.
type TransactionDraft struct {
	Amount       decimal.Decimal
	Type         TransactionType
	Category     Category
	SubCategory  string
	Note         string
	IsForFriends bool
}

// NewTransaction materializes a draft into a committed Transaction with a
// fresh ID and the given commit timestamp.
func NewTransaction(draft TransactionDraft, timestamp time.Time) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Amount:       draft.Amount,
		Type:         draft.Type,
		Category:     draft.Category,
		SubCategory:  draft.SubCategory,
		Timestamp:    timestamp,
		Note:         draft.Note,
		IsForFriends: draft.IsForFriends,
	}
}

// SignedAmount returns the balance effect of the transaction: positive for
// income, negative for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
