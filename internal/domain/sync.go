package domain

import (
	"errors"
	"time"
)

// ErrTransient wraps storage errors caused by connectivity rather than by the
// statement itself. The reconciler retries these with backoff.
var ErrTransient = errors.New("transient storage error")

// SyncState tracks the last reconciliation run per roster table.
type SyncState struct {
	TableName    string    `db:"table_name"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	TotalSynced  int64     `db:"total_synced"`
}

// SyncStats summarizes one reconciliation run for a roster.
type SyncStats struct {
	Table    string
	Students int // roster rows with at least one handle
	Skipped  int // roster rows with no handle at all
	Failed   int // per-student fetch failures
	Updated  int // stats rows written
	Flagged  int
	Cleared  int
	Errors   []string
	Duration time.Duration
}
