// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
)

// LedgerSnapshotKey is the primary key of the single ledger snapshot row.
const LedgerSnapshotKey = "ledger"

// LedgerSnapshotModel represents the ledger_snapshots table. The full ledger
// is stored as one JSON payload under a fixed key and overwritten on every
// save.
type LedgerSnapshotModel struct {
	Key       string    `gorm:"type:varchar(32);primaryKey"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the LedgerSnapshotModel.
func (LedgerSnapshotModel) TableName() string {
	return "ledger_snapshots"
}

type snapshotTransaction struct {
	ID           uuid.UUID `json:"id"`
	Amount       string    `json:"amount"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	SubCategory  string    `json:"subCategory"`
	Timestamp    time.Time `json:"timestamp"`
	Note         string    `json:"note,omitempty"`
	IsForFriends bool      `json:"isForFriends,omitempty"`
}

type snapshotPayload struct {
	Balance          string                `json:"balance"`
	MonthlyAllowance string                `json:"monthlyAllowance"`
	Transactions     []snapshotTransaction `json:"transactions"`
}

// LedgerSnapshotFromEntity converts a domain UserState into a snapshot model.
func LedgerSnapshotFromEntity(state entity.UserState) (*LedgerSnapshotModel, error) {
	payload := snapshotPayload{
		Balance:          state.Balance.String(),
		MonthlyAllowance: state.MonthlyAllowance.String(),
		Transactions:     make([]snapshotTransaction, 0, len(state.Transactions)),
	}
	for _, t := range state.Transactions {
		payload.Transactions = append(payload.Transactions, snapshotTransaction{
			ID:           t.ID,
			Amount:       t.Amount.String(),
			Type:         string(t.Type),
			Category:     string(t.Category),
			SubCategory:  t.SubCategory,
			Timestamp:    t.Timestamp,
			Note:         t.Note,
			IsForFriends: t.IsForFriends,
		})
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger snapshot: %w", err)
	}

	return &LedgerSnapshotModel{
		Key:     LedgerSnapshotKey,
		Payload: string(encoded),
	}, nil
}

// ToEntity converts a snapshot model back into a domain UserState.
func (m *LedgerSnapshotModel) ToEntity() (entity.UserState, error) {
	var payload snapshotPayload
	if err := json.Unmarshal([]byte(m.Payload), &payload); err != nil {
		return entity.UserState{}, fmt.Errorf("failed to decode ledger snapshot: %w", err)
	}

	balance, err := decimal.NewFromString(payload.Balance)
	if err != nil {
		return entity.UserState{}, fmt.Errorf("invalid balance in snapshot: %w", err)
	}
	allowance, err := decimal.NewFromString(payload.MonthlyAllowance)
	if err != nil {
		return entity.UserState{}, fmt.Errorf("invalid allowance in snapshot: %w", err)
	}

	transactions := make([]entity.Transaction, 0, len(payload.Transactions))
	for _, t := range payload.Transactions {
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return entity.UserState{}, fmt.Errorf("invalid amount in snapshot transaction %s: %w", t.ID, err)
		}
		transactions = append(transactions, entity.Transaction{
			ID:           t.ID,
			Amount:       amount,
			Type:         entity.TransactionType(t.Type),
			Category:     entity.Category(t.Category),
			SubCategory:  t.SubCategory,
			Timestamp:    t.Timestamp,
			Note:         t.Note,
			IsForFriends: t.IsForFriends,
		})
	}

	return entity.UserState{
		Balance:          balance,
		MonthlyAllowance: allowance,
		Transactions:     transactions,
	}, nil
}
