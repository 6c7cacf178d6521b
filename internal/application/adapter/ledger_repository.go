// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/moneytree/backend/internal/domain/entity"
)

// LedgerRepository persists the full ledger snapshot as a single durable
// entry with overwrite semantics. Last writer wins; there is no partial-write
// recovery.
type LedgerRepository interface {
	// Load reads the persisted snapshot. A missing snapshot is a normal
	// cold-start condition and is reported as found=false, not an error.
	Load(ctx context.Context) (state entity.UserState, found bool, err error)

	// Save overwrites the snapshot with the given state.
	Save(ctx context.Context, state entity.UserState) error
}
