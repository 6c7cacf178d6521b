// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
	"github.com/moneytree/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Load reads the persisted ledger snapshot.
func (r *ledgerRepository) Load(ctx context.Context) (entity.UserState, bool, error) {
	var snapshot model.LedgerSnapshotModel
	result := r.db.WithContext(ctx).
		Where("key = ?", model.LedgerSnapshotKey).
		First(&snapshot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.UserState{}, false, nil
		}
		return entity.UserState{}, false, result.Error
	}

	state, err := snapshot.ToEntity()
	if err != nil {
		return entity.UserState{}, false, err
	}
	return state, true, nil
}

// Save overwrites the ledger snapshot.
func (r *ledgerRepository) Save(ctx context.Context, state entity.UserState) error {
	snapshot, err := model.LedgerSnapshotFromEntity(state)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(snapshot)
	return result.Error
}
