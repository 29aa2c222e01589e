package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"progress_tracker/internal/domain"
)

// StudentStore reads roster tables. Roster rows are owned by roster
// management; the pipeline only lists them.
type StudentStore struct {
	db *sqlx.DB
}

func NewStudentStore(db *sqlx.DB) *StudentStore {
	return &StudentStore{db: db}
}

func (s *StudentStore) List(ctx context.Context, table string) ([]domain.Student, error) {
	query := fmt.Sprintf(`
		SELECT
			roll_number,
			name,
			COALESCE(github_username, '') AS github_username,
			COALESCE(leetcode_username, '') AS leetcode_username
		FROM %s
		ORDER BY roll_number`,
		pq.QuoteIdentifier(table),
	)

	var students []domain.Student
	if err := s.db.SelectContext(ctx, &students, query); err != nil {
		return nil, classify(err)
	}
	return students, nil
}
