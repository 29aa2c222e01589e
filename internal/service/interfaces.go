package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"progress_tracker/internal/domain"
	"progress_tracker/internal/payload"
)

type StudentStore interface {
	List(ctx context.Context, table string) ([]domain.Student, error)
}

type StatsStore interface {
	HasTable(ctx context.Context, name string) (bool, error)
	Columns(ctx context.Context, table string) ([]string, error)
	UpsertBatch(ctx context.Context, table string, cols []string, rows []map[string]any) error
}

type NotificationStore interface {
	UpsertBatch(ctx context.Context, notifications []domain.Notification) error
	DeleteBatch(ctx context.Context, table, reason string, rollNumbers []int64) error
}

type SyncStateStore interface {
	Get(ctx context.Context, table string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type GitHubSource interface {
	Summary(ctx context.Context, username string) (payload.Object, error)
	Contributions(ctx context.Context, username string) (payload.Object, error)
}

type LeetCodeSource interface {
	Profile(ctx context.Context, username string) (payload.Object, error)
	LanguageStats(ctx context.Context, username string) (payload.Object, error)
	Badges(ctx context.Context, username string) (payload.Object, error)
	Calendar(ctx context.Context, username string) (payload.Object, error)
}

type Publisher interface {
	Publish(ctx context.Context, action string, notification *domain.Notification) error
	Close() error
}
