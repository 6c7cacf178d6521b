// Package ledger contains the ledger store and its use cases.
package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
	domainerror "github.com/moneytree/backend/internal/domain/error"
)

// Store is the single process-wide owner of the mutable ledger state. All
// mutation goes through it; readers receive defensive copies. Commits are
// serialized by the store's mutex: a transaction fully applies (balance
// update, history prepend, persist) before the next mutation is accepted.
type Store struct {
	mu    sync.Mutex
	repo  adapter.LedgerRepository
	state entity.UserState
}

// NewStore creates a new ledger store backed by the given repository.
func NewStore(repo adapter.LedgerRepository) *Store {
	return &Store{repo: repo}
}

// Load reads the persisted snapshot into memory, seeding a default state on
// cold start. Absence of data is not an error.
func (s *Store) Load(ctx context.Context) error {
	state, found, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !found {
		s.state = SeedState(time.Now().UTC())
		slog.Info("Ledger cold start, seeded default state",
			"balance", s.state.Balance.String(),
			"transactions", len(s.state.Transactions),
		)
		return nil
	}

	s.state = state
	slog.Info("Ledger state restored",
		"balance", s.state.Balance.String(),
		"transactions", len(s.state.Transactions),
	)
	return nil
}

// Snapshot returns a copy of the current state for read-only consumers.
func (s *Store) Snapshot() entity.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// AddTransaction validates the draft, assigns an ID and a commit timestamp,
// applies the balance effect, prepends the transaction to the history, and
// persists the full snapshot. The persist happens before the in-memory state
// is replaced: a failed persist leaves the store exactly as it was.
func (s *Store) AddTransaction(ctx context.Context, draft entity.TransactionDraft) (entity.Transaction, entity.UserState, error) {
	if err := validateDraft(draft); err != nil {
		return entity.Transaction{}, entity.UserState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Commit timestamps are monotonically non-decreasing within the ledger.
	timestamp := time.Now().UTC()
	if len(s.state.Transactions) > 0 {
		if head := s.state.Transactions[0].Timestamp; timestamp.Before(head) {
			timestamp = head
		}
	}

	transaction := entity.NewTransaction(draft, timestamp)

	next := s.state.Clone()
	next.Balance = next.Balance.Add(transaction.SignedAmount())
	next.Transactions = append([]entity.Transaction{transaction}, next.Transactions...)

	if err := s.repo.Save(ctx, next); err != nil {
		return entity.Transaction{}, entity.UserState{}, domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerPersist,
			"failed to persist ledger state",
			err,
		)
	}

	s.state = next
	return transaction, next.Clone(), nil
}

// UpdateAllowance replaces the monthly allowance, following the same
// persist-then-install rule as AddTransaction.
func (s *Store) UpdateAllowance(ctx context.Context, allowance decimal.Decimal) (entity.UserState, error) {
	if !allowance.IsPositive() {
		return entity.UserState{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAllowance,
			"monthly allowance must be positive",
			domainerror.ErrInvalidAllowance,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	next.MonthlyAllowance = allowance

	if err := s.repo.Save(ctx, next); err != nil {
		return entity.UserState{}, domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerPersist,
			"failed to persist ledger state",
			err,
		)
	}

	s.state = next
	return next.Clone(), nil
}

// validateDraft enforces the transaction invariants: strictly positive
// amount, known type and category, and the income/expense category pairing.
func validateDraft(draft entity.TransactionDraft) error {
	if !draft.Amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be strictly positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !draft.Type.Valid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !draft.Category.Valid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidCategory,
			"unknown category",
			domainerror.ErrInvalidCategory,
		)
	}

	switch draft.Type {
	case entity.TransactionTypeIncome:
		if draft.Category != entity.CategoryIncome {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeCategoryTypeMismatch,
				"income transactions must use the Income category",
				domainerror.ErrCategoryTypeMismatch,
			)
		}
	case entity.TransactionTypeExpense:
		if draft.Category == entity.CategoryIncome {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeCategoryTypeMismatch,
				"expense transactions cannot use the Income category",
				domainerror.ErrCategoryTypeMismatch,
			)
		}
	}

	return nil
}

// SeedState builds the starter ledger used on cold start.
func SeedState(now time.Time) entity.UserState {
	return entity.UserState{
		Balance:          decimal.NewFromInt(4370),
		MonthlyAllowance: decimal.NewFromInt(5000),
		Transactions: []entity.Transaction{
			{
				ID:          uuid.New(),
				Amount:      decimal.NewFromInt(80),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryTransport,
				SubCategory: "Auto",
				Timestamp:   now.Add(-1 * time.Hour),
				Note:        "College ride",
			},
			{
				ID:          uuid.New(),
				Amount:      decimal.NewFromInt(250),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryFood,
				SubCategory: "Dinner",
				Timestamp:   now.Add(-24 * time.Hour),
				Note:        "Mess bill extra",
			},
			{
				ID:          uuid.New(),
				Amount:      decimal.NewFromInt(5000),
				Type:        entity.TransactionTypeIncome,
				Category:    entity.CategoryIncome,
				SubCategory: "Allowance",
				Timestamp:   now.Add(-48 * time.Hour),
				Note:        "From Parents",
			},
		},
	}
}
