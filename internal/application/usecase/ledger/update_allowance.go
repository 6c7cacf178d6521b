// Package ledger contains the ledger store and its use cases.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// UpdateAllowanceInput represents the input for changing the monthly allowance.
type UpdateAllowanceInput struct {
	Allowance decimal.Decimal
}

// UpdateAllowanceOutput represents the output of changing the monthly allowance.
type UpdateAllowanceOutput struct {
	Allowance decimal.Decimal
	Balance   decimal.Decimal
}

// UpdateAllowanceUseCase handles monthly allowance updates.
type UpdateAllowanceUseCase struct {
	store *Store
}

// NewUpdateAllowanceUseCase creates a new UpdateAllowanceUseCase instance.
func NewUpdateAllowanceUseCase(store *Store) *UpdateAllowanceUseCase {
	return &UpdateAllowanceUseCase{store: store}
}

// Execute replaces the monthly allowance.
func (uc *UpdateAllowanceUseCase) Execute(ctx context.Context, input UpdateAllowanceInput) (*UpdateAllowanceOutput, error) {
	state, err := uc.store.UpdateAllowance(ctx, input.Allowance)
	if err != nil {
		return nil, err
	}

	return &UpdateAllowanceOutput{
		Allowance: state.MonthlyAllowance,
		Balance:   state.Balance,
	}, nil
}
