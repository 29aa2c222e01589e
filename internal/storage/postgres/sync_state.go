package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"progress_tracker/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, table string) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT table_name, last_synced_at, total_synced
		FROM sync_state
		WHERE table_name = $1`

	err := s.db.GetContext(ctx, &state, query, table)
	if errors.Is(err, sql.ErrNoRows) {
		// Empty state for rosters that have never synced.
		return &domain.SyncState{
			TableName:    table,
			LastSyncedAt: time.Time{},
			TotalSynced:  0,
		}, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (table_name, last_synced_at, total_synced)
		VALUES ($1, $2, $3)
		ON CONFLICT (table_name) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			total_synced = EXCLUDED.total_synced`

	_, err := s.db.ExecContext(ctx, query,
		state.TableName,
		state.LastSyncedAt,
		state.TotalSynced,
	)
	return classify(err)
}
