package stats

import (
	"strconv"
	"strings"
	"time"

	"progress_tracker/internal/payload"
)

const dayLayout = "2006-01-02"

// NormalizeDate reduces a provider date value to a YYYY-MM-DD string. The two
// providers have shipped dates as unix seconds, unix milliseconds and several
// ISO-8601 flavors over time, so all of them are tolerated. Returns nil when
// the value cannot be read as a date.
func NormalizeDate(v any) *string {
	if v == nil {
		return nil
	}
	s, ok := payload.ToString(v)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if isDigits(s) {
		return epochToDay(s)
	}
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		d := s[:10]
		return &d
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d := t.UTC().Format(dayLayout)
		return &d
	}
	return nil
}

// EpochDate converts a pure-digit epoch value to a YYYY-MM-DD string, nil for
// anything else. Submission timestamps only ever arrive in epoch form.
func EpochDate(v any) *string {
	if v == nil {
		return nil
	}
	s, ok := payload.ToString(v)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if !isDigits(s) {
		return nil
	}
	return epochToDay(s)
}

func epochToDay(s string) *string {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ts <= 0 {
		return nil
	}
	// More than 10 digits means milliseconds.
	if len(s) > 10 {
		ts /= 1000
	}
	d := time.Unix(ts, 0).UTC().Format(dayLayout)
	return &d
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
