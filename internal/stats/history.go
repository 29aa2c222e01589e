package stats

import (
	"encoding/json"
	"strings"
	"time"

	"progress_tracker/internal/payload"
)

// LeetCodeHistory normalizes a submission calendar (epoch-second keys, counts
// as values) into a YYYY-MM-DD to count map. The dedicated calendar endpoint
// wraps the map as a JSON string; the profile embeds it directly. Returns nil
// when no usable calendar is present.
func LeetCodeHistory(profile, calendar payload.Object) map[string]int {
	raw := profile.Object("submissionCalendar")
	if s, ok := calendar.String("submissionCalendar"); ok {
		var wrapped map[string]any
		if err := json.Unmarshal([]byte(s), &wrapped); err == nil && len(wrapped) > 0 {
			raw = payload.Object(wrapped)
		}
	} else if o := calendar.Object("submissionCalendar"); o != nil {
		raw = o
	}
	if len(raw) == 0 {
		return nil
	}

	history := make(map[string]int, len(raw))
	for k, v := range raw {
		day := EpochDate(strings.TrimSpace(k))
		if day == nil {
			continue
		}
		count, ok := payload.ToInt(v)
		if !ok {
			count = 0
		}
		history[*day] = int(count)
	}
	return history
}

// GitHubHistory flattens the contribution calendar (weeks of contributionDays)
// into a YYYY-MM-DD to count map, nil when empty.
func GitHubHistory(contributions payload.Object) map[string]int {
	weeks := contributions.List("weeks")
	if len(weeks) == 0 {
		return nil
	}

	history := make(map[string]int)
	for _, w := range weeks {
		week, ok := w.(map[string]any)
		if !ok {
			continue
		}
		for _, d := range payload.Object(week).List("contributionDays") {
			dayObj, ok := d.(map[string]any)
			if !ok {
				continue
			}
			day, ok := payload.Object(dayObj).String("date")
			if !ok || day == "" {
				continue
			}
			count, _ := payload.Object(dayObj).Int("contributionCount")
			history[day] = int(count)
		}
	}
	if len(history) == 0 {
		return nil
	}
	return history
}

// HistoryJSON serializes a normalized history map as a compact JSON string,
// nil when the map is empty. This is the exact representation persisted.
func HistoryJSON(history map[string]int) *string {
	if len(history) == 0 {
		return nil
	}
	b, err := json.Marshal(history)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

// ParseHistory is the inverse of HistoryJSON.
func ParseHistory(s string) (map[string]int, error) {
	var m map[string]int
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Streaks computes the current and longest daily streaks over a normalized
// history map. Days with a zero count do not extend a streak. A nil map means
// no calendar data at all, yielding nil streaks; a map with no active days
// yields zeros.
//
// The current streak walks back from today in UTC even when the provider's own
// calendar boundary is in another timezone, so a run close to UTC midnight can
// under-count by one day. Downstream consumers rely on this boundary.
func Streaks(history map[string]int, now time.Time) (current, longest *int) {
	if history == nil {
		return nil, nil
	}

	days := make(map[time.Time]struct{}, len(history))
	var min, max time.Time
	for k, count := range history {
		if count <= 0 {
			continue
		}
		d, err := time.ParseInLocation(dayLayout, k, time.UTC)
		if err != nil {
			continue
		}
		if len(days) == 0 || d.Before(min) {
			min = d
		}
		if len(days) == 0 || d.After(max) {
			max = d
		}
		days[d] = struct{}{}
	}

	current, longest = new(int), new(int)
	if len(days) == 0 {
		return current, longest
	}

	run := 0
	for d := min; !d.After(max); d = d.AddDate(0, 0, 1) {
		if _, ok := days[d]; ok {
			run++
			if run > *longest {
				*longest = run
			}
		} else {
			run = 0
		}
	}

	today := now.UTC().Truncate(24 * time.Hour)
	for d := today; ; d = d.AddDate(0, 0, -1) {
		if _, ok := days[d]; !ok {
			break
		}
		*current++
	}
	return current, longest
}
