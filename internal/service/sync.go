package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"progress_tracker/internal/config"
	"progress_tracker/internal/domain"
	"progress_tracker/internal/payload"
	"progress_tracker/internal/stats"
)

const (
	staleReason    = "No LC submission in last 3 days"
	staleAfterDays = 3
)

// SyncService runs the reconciliation pipeline for configured rosters: a
// bounded worker pool fetches provider data and derives metrics, then a
// single-threaded reconciler persists stats in chunks and maintains the
// staleness-notification set. Callers must not run two reconciliations for the
// same roster concurrently; nothing here serializes them.
type SyncService struct {
	github        GitHubSource
	leetcode      LeetCodeSource
	students      StudentStore
	stats         StatsStore
	notifications NotificationStore
	syncState     SyncStateStore
	publisher     Publisher
	logger        *slog.Logger
	config        config.SyncConfig
}

func NewSyncService(
	github GitHubSource,
	leetcode LeetCodeSource,
	students StudentStore,
	statsStore StatsStore,
	notifications NotificationStore,
	syncState SyncStateStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		github:        github,
		leetcode:      leetcode,
		students:      students,
		stats:         statsStore,
		notifications: notifications,
		syncState:     syncState,
		publisher:     publisher,
		logger:        logger,
		config:        cfg,
	}
}

// Sync reconciles every configured roster in order.
func (s *SyncService) Sync(ctx context.Context) error {
	var errs []error
	for _, table := range s.config.Tables {
		if _, err := s.SyncRoster(ctx, table); err != nil {
			s.logger.Error("roster sync failed", "roster", table, "error", err)
			errs = append(errs, fmt.Errorf("roster %s: %w", table, err))
		}
	}
	return errors.Join(errs...)
}

// SyncRoster runs one full fetch and persist pass for a roster table. The only
// hard failures are the missing-table preconditions and an unreadable roster;
// everything after that degrades to entries in SyncStats.Errors.
func (s *SyncService) SyncRoster(ctx context.Context, table string) (*domain.SyncStats, error) {
	startTime := time.Now()
	dataTable := table + "_data"
	logger := s.logger.With("roster", table)

	for _, name := range []string{table, dataTable} {
		exists, err := s.stats.HasTable(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("check table %s: %w", name, err)
		}
		if !exists {
			return nil, fmt.Errorf("table %q does not exist", name)
		}
	}

	roster, err := s.students.List(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	var work []domain.Student
	skipped := 0
	for _, student := range roster {
		student.GitHubUsername = strings.TrimSpace(student.GitHubUsername)
		student.LeetCodeUsername = strings.TrimSpace(student.LeetCodeUsername)
		if !student.Tracked() {
			skipped++
			continue
		}
		work = append(work, student)
	}

	run := &domain.SyncStats{Table: table, Students: len(work), Skipped: skipped}
	if len(work) == 0 {
		run.Duration = time.Since(startTime)
		return run, nil
	}

	logger.Info("starting sync", "students", len(work), "skipped", skipped, "workers", s.config.Workers)

	results, fetchErrs := s.fetchAll(ctx, work)
	run.Failed = len(fetchErrs)
	run.Errors = fetchErrs

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var toFlag []domain.Notification
	var toClear []int64
	for _, r := range results {
		if isStale(r.stats.LCLastAccepted, today) {
			toFlag = append(toFlag, domain.Notification{
				TableName:  table,
				RollNumber: r.student.RollNumber,
				Name:       r.student.Name,
				Reason:     staleReason,
			})
		} else {
			toClear = append(toClear, r.student.RollNumber)
		}
	}
	run.Flagged = len(toFlag)
	run.Cleared = len(toClear)

	updated, writeErrs := s.persistStats(ctx, dataTable, results)
	run.Updated = updated
	run.Errors = append(run.Errors, writeErrs...)

	run.Errors = append(run.Errors, s.reconcileNotifications(ctx, table, toFlag, toClear)...)

	s.publishAlerts(ctx, table, toFlag, toClear)

	if err := s.updateSyncState(ctx, table, updated); err != nil {
		run.Errors = append(run.Errors, fmt.Sprintf("sync state: %v", err))
	}

	run.Duration = time.Since(startTime)
	logger.Info("sync completed",
		"updated", run.Updated,
		"failed", run.Failed,
		"flagged", run.Flagged,
		"cleared", run.Cleared,
		"errors", len(run.Errors),
		"duration", run.Duration,
	)
	return run, nil
}

type fetchResult struct {
	student domain.Student
	stats   *domain.StudentStats
}

type fetchOutcome struct {
	student domain.Student
	stats   *domain.StudentStats
	err     error
}

// fetchAll runs derivation for every work item on a fixed-width worker pool.
// Outcomes flow to this single collector; completion order is whatever the
// pool produces.
func (s *SyncService) fetchAll(ctx context.Context, work []domain.Student) ([]fetchResult, []string) {
	jobs := make(chan domain.Student)
	outcomes := make(chan fetchOutcome)

	var wg sync.WaitGroup
	for i := 0; i < s.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for student := range jobs {
				outcomes <- s.fetchOne(ctx, student)
			}
		}()
	}
	go func() {
		for _, student := range work {
			jobs <- student
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	var results []fetchResult
	var errs []string
	for out := range outcomes {
		if out.err != nil {
			errs = append(errs, fmt.Sprintf("roll=%d: %v", out.student.RollNumber, out.err))
			continue
		}
		results = append(results, fetchResult{student: out.student, stats: out.stats})
	}
	return results, errs
}

// fetchOne performs the per-provider calls for one student and derives the
// metrics record. A failure anywhere stays confined to this student.
func (s *SyncService) fetchOne(ctx context.Context, student domain.Student) (out fetchOutcome) {
	out.student = student
	defer func() {
		if r := recover(); r != nil {
			out.stats = nil
			out.err = fmt.Errorf("panic: %v", r)
		}
	}()

	var git, gitContri, lcProfile, lcLang, lcBadges, lcCalendar payload.Object
	var err error

	if student.GitHubUsername != "" {
		if git, err = s.github.Summary(ctx, student.GitHubUsername); err != nil {
			out.err = fmt.Errorf("github summary: %w", err)
			return out
		}
		if gitContri, err = s.github.Contributions(ctx, student.GitHubUsername); err != nil {
			out.err = fmt.Errorf("github contributions: %w", err)
			return out
		}
	}
	if student.LeetCodeUsername != "" {
		if lcProfile, err = s.leetcode.Profile(ctx, student.LeetCodeUsername); err != nil {
			out.err = fmt.Errorf("leetcode profile: %w", err)
			return out
		}
		if lcLang, err = s.leetcode.LanguageStats(ctx, student.LeetCodeUsername); err != nil {
			out.err = fmt.Errorf("leetcode language stats: %w", err)
			return out
		}
		if lcBadges, err = s.leetcode.Badges(ctx, student.LeetCodeUsername); err != nil {
			out.err = fmt.Errorf("leetcode badges: %w", err)
			return out
		}
		if lcCalendar, err = s.leetcode.Calendar(ctx, student.LeetCodeUsername); err != nil {
			out.err = fmt.Errorf("leetcode calendar: %w", err)
			return out
		}
	}

	derived := stats.Compute(git, lcProfile, lcLang, lcBadges, gitContri, lcCalendar)
	derived.RollNumber = student.RollNumber
	out.stats = derived
	return out
}

// persistStats writes results in outer chunks subdivided into micro chunks,
// each micro chunk one atomic upsert statement. A failed chunk is abandoned
// after retries; later chunks still proceed.
func (s *SyncService) persistStats(ctx context.Context, dataTable string, results []fetchResult) (int, []string) {
	if len(results) == 0 {
		return 0, nil
	}

	actual, err := s.stats.Columns(ctx, dataTable)
	if err != nil {
		return 0, []string{fmt.Sprintf("snapshot columns: %v", err)}
	}
	known := make(map[string]struct{}, len(actual))
	for _, c := range actual {
		known[c] = struct{}{}
	}
	var cols []string
	for _, c := range domain.StatsColumns {
		if _, ok := known[c]; ok {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 || cols[0] != "rollnumber" {
		return 0, []string{fmt.Sprintf("table %q has no rollnumber column", dataTable)}
	}

	updated := 0
	var errs []string
	for _, outer := range chunk(results, s.config.BatchSize) {
		for _, micro := range chunk(outer, s.config.MicroBatchSize) {
			rows := make([]map[string]any, len(micro))
			for i, r := range micro {
				rows[i] = r.stats.Row()
			}
			err := s.withRetries(ctx, func() error {
				return s.stats.UpsertBatch(ctx, dataTable, cols, rows)
			})
			if err == nil {
				updated += len(rows)
				continue
			}
			if errors.Is(err, domain.ErrTransient) {
				errs = append(errs, fmt.Sprintf("upsert retries exceeded (%d rows): %v", len(rows), err))
			} else {
				errs = append(errs, fmt.Sprintf("upsert error (%d rows): %v", len(rows), err))
			}
		}
	}
	return updated, errs
}

// reconcileNotifications removes cleared flags before upserting new ones so a
// stale-to-fresh flip in the same run never shows both states.
func (s *SyncService) reconcileNotifications(ctx context.Context, table string, toFlag []domain.Notification, toClear []int64) []string {
	var errs []string
	for _, ids := range chunk(toClear, s.config.BatchSize) {
		if err := s.notifications.DeleteBatch(ctx, table, staleReason, ids); err != nil {
			errs = append(errs, fmt.Sprintf("notif-remove batch: %v", err))
		}
	}
	for _, outer := range chunk(toFlag, s.config.BatchSize) {
		for _, micro := range chunk(outer, s.config.MicroBatchSize) {
			err := s.withRetries(ctx, func() error {
				return s.notifications.UpsertBatch(ctx, micro)
			})
			if err == nil {
				continue
			}
			if errors.Is(err, domain.ErrTransient) {
				errs = append(errs, fmt.Sprintf("notif-upsert retries exceeded: %v", err))
			} else {
				errs = append(errs, fmt.Sprintf("notif-upsert batch: %v", err))
			}
		}
	}
	return errs
}

func (s *SyncService) publishAlerts(ctx context.Context, table string, toFlag []domain.Notification, toClear []int64) {
	if s.publisher == nil {
		return
	}
	for i := range toFlag {
		if err := s.publisher.Publish(ctx, "flagged", &toFlag[i]); err != nil {
			s.logger.Warn("publish flagged alert failed", "roll", toFlag[i].RollNumber, "error", err)
		}
	}
	for _, roll := range toClear {
		n := domain.Notification{TableName: table, RollNumber: roll, Reason: staleReason}
		if err := s.publisher.Publish(ctx, "cleared", &n); err != nil {
			s.logger.Warn("publish cleared alert failed", "roll", roll, "error", err)
		}
	}
}

func (s *SyncService) updateSyncState(ctx context.Context, table string, updated int) error {
	state, err := s.syncState.Get(ctx, table)
	if err != nil {
		return err
	}
	state.TableName = table
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(updated)
	return s.syncState.Update(ctx, state)
}

// withRetries retries transient storage errors with exponential backoff.
// Non-transient errors return immediately.
func (s *SyncService) withRetries(ctx context.Context, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil || !errors.Is(err, domain.ErrTransient) {
			return err
		}
		if attempt >= s.config.MaxRetries {
			return err
		}
		delay := s.config.RetryBaseDelay * (1 << attempt)
		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
	}
}

// isStale reports whether the last accepted submission is missing, unreadable
// or more than staleAfterDays older than today (UTC midnight).
func isStale(lastAccepted *string, today time.Time) bool {
	if lastAccepted == nil {
		return true
	}
	d, err := time.ParseInLocation("2006-01-02", *lastAccepted, time.UTC)
	if err != nil {
		return true
	}
	return today.Sub(d) > staleAfterDays*24*time.Hour
}

func chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
