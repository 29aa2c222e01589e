//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"progress_tracker/internal/domain"
	"progress_tracker/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_students.up.sql"),
			filepath.Join(migrationsPath, "002_create_students_data.up.sql"),
			filepath.Join(migrationsPath, "003_create_notifications.up.sql"),
			filepath.Join(migrationsPath, "004_create_sync_state.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM notifications")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM students_data")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM students")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_state")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) seedStudents() {
	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO students (roll_number, name, github_username, leetcode_username) VALUES
		(1, 'Alice', 'alice', 'alice_lc'),
		(2, 'Bob', NULL, 'bob_lc'),
		(3, 'Carol', 'carol', NULL)
	`)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TestStudentStore_List() {
	store := NewStudentStore(s.db)
	s.seedStudents()

	students, err := store.List(s.ctx, "students")
	s.NoError(err)
	s.Len(students, 3)

	s.Equal(int64(1), students[0].RollNumber)
	s.Equal("Alice", students[0].Name)
	s.Equal("alice", students[0].GitHubUsername)

	// NULL usernames come back as empty strings.
	s.Equal("", students[1].GitHubUsername)
	s.Equal("bob_lc", students[1].LeetCodeUsername)
	s.Equal("", students[2].LeetCodeUsername)
}

func (s *PostgresIntegrationSuite) TestStatsStore_HasTable() {
	store := NewStatsStore(s.db)

	exists, err := store.HasTable(s.ctx, "students_data")
	s.NoError(err)
	s.True(exists)

	exists, err = store.HasTable(s.ctx, "no_such_table")
	s.NoError(err)
	s.False(exists)
}

func (s *PostgresIntegrationSuite) TestStatsStore_Columns() {
	store := NewStatsStore(s.db)

	cols, err := store.Columns(s.ctx, "students_data")
	s.NoError(err)

	s.Contains(cols, "rollnumber")
	s.Contains(cols, "lc_total_solved")
	s.Contains(cols, "gh_contribution_history")
	// Ordinal order puts the key first.
	s.Equal("rollnumber", cols[0])
}

func (s *PostgresIntegrationSuite) TestStatsStore_UpsertBatch_Insert() {
	store := NewStatsStore(s.db)

	cols := []string{"rollnumber", "lc_total_solved", "lc_cur_streak", "lc_submission_history"}
	rows := []map[string]any{
		{"rollnumber": int64(1), "lc_total_solved": utils.Ptr(42), "lc_cur_streak": utils.Ptr(3), "lc_submission_history": utils.Ptr(`{"2026-08-30": 2}`)},
		{"rollnumber": int64(2), "lc_total_solved": utils.Ptr(7), "lc_cur_streak": nil, "lc_submission_history": nil},
	}

	err := store.UpsertBatch(s.ctx, "students_data", cols, rows)
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM students_data")
	s.NoError(err)
	s.Equal(2, count)

	var solved int
	err = s.db.GetContext(s.ctx, &solved, "SELECT lc_total_solved FROM students_data WHERE rollnumber = 1")
	s.NoError(err)
	s.Equal(42, solved)
}

func (s *PostgresIntegrationSuite) TestStatsStore_UpsertBatch_UpdatesOnConflict() {
	store := NewStatsStore(s.db)

	cols := []string{"rollnumber", "lc_total_solved"}
	err := store.UpsertBatch(s.ctx, "students_data", cols, []map[string]any{
		{"rollnumber": int64(1), "lc_total_solved": 10},
	})
	s.NoError(err)

	err = store.UpsertBatch(s.ctx, "students_data", cols, []map[string]any{
		{"rollnumber": int64(1), "lc_total_solved": 15},
	})
	s.NoError(err)

	var count, solved int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM students_data")
	s.NoError(err)
	s.Equal(1, count)

	err = s.db.GetContext(s.ctx, &solved, "SELECT lc_total_solved FROM students_data WHERE rollnumber = 1")
	s.NoError(err)
	s.Equal(15, solved)
}

func (s *PostgresIntegrationSuite) TestStatsStore_UpsertBatch_SubsetOfColumns() {
	store := NewStatsStore(s.db)

	// A write restricted to a column subset leaves other columns untouched.
	err := store.UpsertBatch(s.ctx, "students_data", []string{"rollnumber", "lc_total_solved", "git_followers"}, []map[string]any{
		{"rollnumber": int64(1), "lc_total_solved": 10, "git_followers": 5},
	})
	s.NoError(err)

	err = store.UpsertBatch(s.ctx, "students_data", []string{"rollnumber", "lc_total_solved"}, []map[string]any{
		{"rollnumber": int64(1), "lc_total_solved": 11},
	})
	s.NoError(err)

	var followers int
	err = s.db.GetContext(s.ctx, &followers, "SELECT git_followers FROM students_data WHERE rollnumber = 1")
	s.NoError(err)
	s.Equal(5, followers)
}

func (s *PostgresIntegrationSuite) TestNotificationStore_UpsertBatch() {
	store := NewNotificationStore(s.db)

	err := store.UpsertBatch(s.ctx, []domain.Notification{
		{TableName: "students", RollNumber: 1, Name: "Alice", Reason: "No LC submission in last 3 days"},
		{TableName: "students", RollNumber: 2, Name: "Bob", Reason: "No LC submission in last 3 days"},
	})
	s.NoError(err)

	// Re-flagging the same student overwrites, never duplicates.
	err = store.UpsertBatch(s.ctx, []domain.Notification{
		{TableName: "students", RollNumber: 1, Name: "Alice Smith", Reason: "No LC submission in last 3 days"},
	})
	s.NoError(err)

	notifications, err := store.List(s.ctx)
	s.NoError(err)
	s.Len(notifications, 2)
	s.Equal("Alice Smith", notifications[0].Name)
}

func (s *PostgresIntegrationSuite) TestNotificationStore_DeleteBatch_ReasonGuard() {
	store := NewNotificationStore(s.db)

	err := store.UpsertBatch(s.ctx, []domain.Notification{
		{TableName: "students", RollNumber: 1, Name: "Alice", Reason: "No LC submission in last 3 days"},
		{TableName: "students", RollNumber: 2, Name: "Bob", Reason: "manually flagged"},
	})
	s.NoError(err)

	err = store.DeleteBatch(s.ctx, "students", "No LC submission in last 3 days", []int64{1, 2})
	s.NoError(err)

	// Only the automatically flagged row goes away.
	notifications, err := store.List(s.ctx)
	s.NoError(err)
	s.Len(notifications, 1)
	s.Equal(int64(2), notifications[0].RollNumber)
	s.Equal("manually flagged", notifications[0].Reason)
}

func (s *PostgresIntegrationSuite) TestNotificationStore_DeleteBatch_Empty() {
	store := NewNotificationStore(s.db)

	err := store.DeleteBatch(s.ctx, "students", "No LC submission in last 3 days", nil)
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_GetNew() {
	store := NewSyncStateStore(s.db)

	state, err := store.Get(s.ctx, "students")
	s.NoError(err)
	s.NotNil(state)
	s.Equal("students", state.TableName)
	s.True(state.LastSyncedAt.IsZero())
	s.Equal(int64(0), state.TotalSynced)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_UpdateAndGet() {
	store := NewSyncStateStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	state := &domain.SyncState{
		TableName:    "students",
		LastSyncedAt: now,
		TotalSynced:  100,
	}
	err := store.Update(s.ctx, state)
	s.NoError(err)

	state.TotalSynced = 130
	err = store.Update(s.ctx, state)
	s.NoError(err)

	retrieved, err := store.Get(s.ctx, "students")
	s.NoError(err)
	s.Equal("students", retrieved.TableName)
	s.Equal(int64(130), retrieved.TotalSynced)
	s.WithinDuration(now, retrieved.LastSyncedAt, time.Second)
}
