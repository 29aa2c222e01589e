// Package stats derives normalized activity metrics from raw provider
// payloads. Everything here is pure: no I/O, no failures. A field that cannot
// be extracted becomes nil.
package stats

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"progress_tracker/internal/domain"
	"progress_tracker/internal/payload"
)

// Compute builds one StudentStats record from up to six raw payloads. Any of
// them may be nil or empty when the matching handle is missing or the provider
// returned no data.
func Compute(git, lcProfile, lcLang, lcBadges, gitContri, lcCalendar payload.Object) *domain.StudentStats {
	s := &domain.StudentStats{}

	s.GitFollowers = intField(git, "followers")
	s.GitFollowing = intField(git, "following")
	s.GitPublicRepos = intField(git, "public_repo_count")

	origCount := len(git.Object("original_repos"))
	authoredCount := len(git.Object("authored_forks"))
	s.GitOriginalRepos = &origCount
	s.GitAuthoredRepos = &authoredCount

	if overall := git.Object("overall_last_commit"); overall != nil {
		if raw, ok := overall.Value("date"); ok {
			s.LastCommitDate = NormalizeDate(raw)
		}
	}
	s.GitBadges = joinKeys(git.Object("badges"))

	s.LCTotalSolved = intField(lcProfile, "totalSolved")
	s.LCEasy = intField(lcProfile, "easySolved")
	s.LCMedium = intField(lcProfile, "mediumSolved")
	s.LCHard = intField(lcProfile, "hardSolved")
	if ranking, ok := lcProfile.Int("ranking"); ok {
		s.LCRanking = &ranking
	}

	s.LCLastSubmission, s.LCLastAccepted = submissionRecency(lcProfile.List("recentSubmissions"))

	s.LCLanguages = joinLanguages(lcLang)

	if count, ok := lcBadges.Int("badgesCount"); ok {
		v := strconv.FormatInt(count, 10)
		s.LCBadges = &v
	}

	lcHistory := LeetCodeHistory(lcProfile, lcCalendar)
	s.LCSubmissionHistory = HistoryJSON(lcHistory)
	s.LCCurrentStreak, s.LCLongestStreak = Streaks(lcHistory, time.Now())

	s.GHContributionHistory = HistoryJSON(GitHubHistory(gitContri))

	return s
}

// submissionRecency reads the newest-first recent-submissions list: the first
// element dates the last submission, the first accepted element dates the last
// accepted one.
func submissionRecency(recent []any) (last, lastAccepted *string) {
	if len(recent) == 0 {
		return nil, nil
	}
	if first, ok := recent[0].(map[string]any); ok {
		if ts, present := payload.Object(first).Value("timestamp"); present {
			last = EpochDate(ts)
		}
	}
	for _, item := range recent {
		sub, ok := item.(map[string]any)
		if !ok {
			continue
		}
		status, _ := payload.Object(sub).String("statusDisplay")
		if !strings.EqualFold(status, "accepted") {
			continue
		}
		if ts, present := payload.Object(sub).Value("timestamp"); present {
			lastAccepted = EpochDate(ts)
		}
		break
	}
	return last, lastAccepted
}

func joinLanguages(lcLang payload.Object) *string {
	matched := lcLang.Object("matchedUser")
	if matched == nil {
		return nil
	}
	var names []string
	for _, item := range matched.List("languageProblemCount") {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if name, present := payload.Object(entry).String("languageName"); present && name != "" {
			names = append(names, name)
		}
	}
	return joinList(names)
}

func joinKeys(o payload.Object) *string {
	if len(o) == 0 {
		return nil
	}
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return joinList(keys)
}

func joinList(vals []string) *string {
	if len(vals) == 0 {
		return nil
	}
	s := strings.Join(vals, ",")
	return &s
}

func intField(o payload.Object, key string) *int {
	n, ok := o.Int(key)
	if !ok {
		return nil
	}
	v := int(n)
	return &v
}
