// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// UserState is the authoritative ledger: the running balance, the monthly
// allowance, and the full transaction history ordered most-recent-first.
type UserState struct {
	Balance          decimal.Decimal
	MonthlyAllowance decimal.Decimal
	Transactions     []Transaction
}

// Clone returns a deep-enough copy of the state. Transactions are value types
// so copying the slice is sufficient; callers may not mutate committed
// entries through a clone.
func (s UserState) Clone() UserState {
	transactions := make([]Transaction, len(s.Transactions))
	copy(transactions, s.Transactions)
	return UserState{
		Balance:          s.Balance,
		MonthlyAllowance: s.MonthlyAllowance,
		Transactions:     transactions,
	}
}
