package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// StatsStore writes derived metrics into per-roster stats tables.
type StatsStore struct {
	db *sqlx.DB
}

func NewStatsStore(db *sqlx.DB) *StatsStore {
	return &StatsStore{db: db}
}

// HasTable reports whether a table exists in the current search path.
func (s *StatsStore) HasTable(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT to_regclass($1) IS NOT NULL`, name)
	if err != nil {
		return false, classify(err)
	}
	return exists, nil
}

// Columns snapshots the destination table's column set. The reconciler
// filters row payloads against it, so a stats table carrying only a subset of
// the metric columns keeps working.
func (s *StatsStore) Columns(ctx context.Context, table string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position`

	var cols []string
	if err := s.db.SelectContext(ctx, &cols, query, table); err != nil {
		return nil, classify(err)
	}
	return cols, nil
}

// UpsertBatch writes one micro-chunk as a single multi-row insert that updates
// every non-key column on conflict. cols must start with the rollnumber key and
// every row must carry a value (possibly nil) for each column.
func (s *StatsStore) UpsertBatch(ctx context.Context, table string, cols []string, rows []map[string]any) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(pq.QuoteIdentifier(table))
	sb.WriteString(" (")
	for i, col := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pq.QuoteIdentifier(col))
	}
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(cols))
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j, col := range cols {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*len(cols) + j + 1))
			args = append(args, row[col])
		}
		sb.WriteString(")")
	}

	sb.WriteString(" ON CONFLICT (rollnumber) DO UPDATE SET ")
	first := true
	for _, col := range cols {
		if col == "rollnumber" {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(pq.QuoteIdentifier(col))
		sb.WriteString(" = EXCLUDED.")
		sb.WriteString(pq.QuoteIdentifier(col))
	}

	_, err := s.db.ExecContext(ctx, sb.String(), args...)
	return classify(err)
}
