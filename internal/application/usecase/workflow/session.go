// Package workflow contains the categorization workflow use cases: the
// finite-state flow that turns an amount plus free-text, quick-pick, or
// photographed-bill input into a committed transaction.
package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
	domainerror "github.com/moneytree/backend/internal/domain/error"
)

// State identifies a step of the categorization workflow.
type State string

const (
	StateAmountEntry    State = "amount_entry"
	StateTypeSelection  State = "type_selection"
	StateExpenseContext State = "expense_context"
	StateIncomeSource   State = "income_source"
	StateAIThinking     State = "ai_thinking"
	StateConfirmation   State = "confirmation"
)

// Suggestion is the categorization proposal shown on the confirmation step,
// either from the AI advisor or from the fixed local fallback.
type Suggestion struct {
	Category     entity.Category
	SubCategory  string
	Question     string
	BillItems    []string
	FromFallback bool
}

// Session is one run of the workflow from amount entry to commit or cancel.
// Sessions never leak state into the next instance: commit and cancel remove
// them entirely.
type Session struct {
	ID         uuid.UUID
	State      State
	Amount     decimal.Decimal
	Type       entity.TransactionType
	Context    string
	Suggestion *Suggestion
	CreatedAt  time.Time

	// generation guards against stale async results: it is bumped on every
	// transition into ai_thinking and on restart, and an advisor result is
	// applied only when its generation still matches.
	generation uint64

	// committing is set while a terminal commit is writing to the ledger,
	// keeping a concurrent duplicate from double-committing the session.
	committing bool
}

// QuickOption is a fixed quick-pick label for the expense-context step. The
// category is an advisory hint for presentation; actual categorization is
// always delegated to the advisor.
type QuickOption struct {
	Label        string
	CategoryHint entity.Category
}

// QuickOptions returns the eight fixed expense quick-picks.
func QuickOptions() []QuickOption {
	return []QuickOption{
		{Label: "Lunch / Dinner", CategoryHint: entity.CategoryFood},
		{Label: "Chai / Coffee", CategoryHint: entity.CategoryFood},
		{Label: "Auto / Metro", CategoryHint: entity.CategoryTransport},
		{Label: "Clothes / Shoes", CategoryHint: entity.CategoryShopping},
		{Label: "Smoke / Vape", CategoryHint: entity.CategoryHabits},
		{Label: "Movie / Gaming", CategoryHint: entity.CategoryEntertainment},
		{Label: "Daily Habits", CategoryHint: entity.CategoryHabits},
		{Label: "Something else", CategoryHint: entity.CategoryMiscellaneous},
	}
}

// SessionManager owns all live workflow sessions behind a single mutex.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create registers a new session in the amount-entry state.
func (m *SessionManager) Create() Session {
	session := &Session{
		ID:        uuid.New(),
		State:     StateAmountEntry,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return *session
}

// View returns a copy of the session.
func (m *SessionManager) View(id uuid.UUID) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return Session{}, notFound()
	}
	return *session, nil
}

// Remove deletes the session. Removing an unknown session is a no-op.
func (m *SessionManager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// mutate applies fn to the session under the manager lock and returns the
// resulting copy.
func (m *SessionManager) mutate(id uuid.UUID, fn func(*Session) error) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return Session{}, notFound()
	}
	if err := fn(session); err != nil {
		return Session{}, err
	}
	return *session, nil
}

// beginAnalysis transitions the session into ai_thinking and returns the
// generation token the async result must present. prepare, when set, runs as
// part of the same transition so callers never need a second mutation.
// Entering ai_thinking while an analysis is pending is structurally
// impossible: the transition is only legal from the given source states.
func (m *SessionManager) beginAnalysis(id uuid.UUID, prepare func(*Session), from ...State) (Session, uint64, error) {
	session, err := m.mutate(id, func(s *Session) error {
		if s.State == StateAIThinking {
			return domainerror.NewWorkflowError(
				domainerror.ErrCodeAnalysisInFlight,
				"categorization already in progress",
				domainerror.ErrAnalysisInFlight,
			)
		}
		if err := requireState(s, from...); err != nil {
			return err
		}
		s.State = StateAIThinking
		s.generation++
		if prepare != nil {
			prepare(s)
		}
		return nil
	})
	if err != nil {
		return Session{}, 0, err
	}
	return session, session.generation, nil
}

// completeAnalysis installs the analysis outcome, moving the session to the
// confirmation state. A result whose generation no longer matches, or whose
// session has moved on or disappeared, is silently dropped.
func (m *SessionManager) completeAnalysis(id uuid.UUID, generation uint64, suggestion Suggestion, amount *decimal.Decimal) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok || session.State != StateAIThinking || session.generation != generation {
		return false
	}

	if amount != nil {
		session.Amount = *amount
	}
	session.Suggestion = &suggestion
	session.State = StateConfirmation
	return true
}

// failAnalysis reopens the amount step after a failed bill extraction. A
// fallback confirmation without an extracted amount could never commit, so
// the session returns to manual entry instead. Stale failures are dropped
// under the same generation guard as results.
func (m *SessionManager) failAnalysis(id uuid.UUID, generation uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok || session.State != StateAIThinking || session.generation != generation {
		return false
	}

	session.State = StateAmountEntry
	session.Type = entity.TransactionType("")
	session.Suggestion = nil
	return true
}

// claimCommit marks the session as the subject of an in-progress commit. The
// state check and the mark happen under one lock, so two concurrent commits
// of the same session cannot both reach the ledger: the loser is rejected
// until the winner removes the session, or releases the claim after a failed
// persist.
func (m *SessionManager) claimCommit(id uuid.UUID, from State) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return Session{}, notFound()
	}
	if err := requireState(session, from); err != nil {
		return Session{}, err
	}
	if session.committing {
		return Session{}, domainerror.NewWorkflowError(
			domainerror.ErrCodeInvalidWorkflowState,
			"commit already in progress",
			domainerror.ErrInvalidWorkflowState,
		)
	}
	session.committing = true
	return *session, nil
}

// releaseCommit clears the commit claim after a failed persist so the commit
// can be retried.
func (m *SessionManager) releaseCommit(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[id]; ok {
		session.committing = false
	}
}

func requireState(s *Session, allowed ...State) error {
	for _, state := range allowed {
		if s.State == state {
			return nil
		}
	}
	return domainerror.NewWorkflowError(
		domainerror.ErrCodeInvalidWorkflowState,
		"action not valid in state "+string(s.State),
		domainerror.ErrInvalidWorkflowState,
	)
}

func notFound() error {
	return domainerror.NewWorkflowError(
		domainerror.ErrCodeSessionNotFound,
		"workflow session not found",
		domainerror.ErrSessionNotFound,
	)
}
