package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"progress_tracker/internal/domain"
)

// NotificationStore maintains the staleness-notification set.
type NotificationStore struct {
	db *sqlx.DB
}

func NewNotificationStore(db *sqlx.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

// UpsertBatch writes one chunk of notifications; a second write with the same
// (table_name, rollnumber) key overwrites, never duplicates.
func (s *NotificationStore) UpsertBatch(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO notifications (table_name, rollnumber, name, reason) VALUES ")
	args := make([]any, 0, len(notifications)*4)
	for i, n := range notifications {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i*4 + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 3))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 4))
		sb.WriteString(")")
		args = append(args, n.TableName, n.RollNumber, n.Name, n.Reason)
	}
	sb.WriteString(` ON CONFLICT (table_name, rollnumber) DO UPDATE SET
		name = EXCLUDED.name,
		reason = EXCLUDED.reason`)

	_, err := s.db.ExecContext(ctx, sb.String(), args...)
	return classify(err)
}

// DeleteBatch removes notifications carrying exactly the given reason for the
// given roll numbers. Rows with a manually entered reason are left alone.
func (s *NotificationStore) DeleteBatch(ctx context.Context, table, reason string, rollNumbers []int64) error {
	if len(rollNumbers) == 0 {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM notifications
		WHERE table_name = $1 AND reason = $2 AND rollnumber = ANY($3)`,
		table, reason, pq.Array(rollNumbers),
	)
	return classify(err)
}

// List returns the full notification set ordered by (table, roll number).
func (s *NotificationStore) List(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := s.db.SelectContext(ctx, &notifications, `
		SELECT table_name, rollnumber, name, reason
		FROM notifications
		ORDER BY table_name, rollnumber`)
	if err != nil {
		return nil, classify(err)
	}
	return notifications, nil
}
