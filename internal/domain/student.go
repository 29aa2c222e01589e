package domain

// Student is one roster row. RollNumber is the join key between the roster
// and its stats table; the display name never is.
type Student struct {
	RollNumber       int64  `db:"roll_number"`
	Name             string `db:"name"`
	GitHubUsername   string `db:"github_username"`
	LeetCodeUsername string `db:"leetcode_username"`
}

// Tracked reports whether the pipeline should fetch anything for this student.
func (s Student) Tracked() bool {
	return s.GitHubUsername != "" || s.LeetCodeUsername != ""
}

// StudentStats holds the derived activity metrics for one student. Nil means
// the provider data was unavailable, which is distinct from zero.
type StudentStats struct {
	RollNumber int64

	GitFollowers     *int
	GitFollowing     *int
	GitPublicRepos   *int
	GitOriginalRepos *int
	GitAuthoredRepos *int
	LastCommitDate   *string
	GitBadges        *string

	LCTotalSolved    *int
	LCEasy           *int
	LCMedium         *int
	LCHard           *int
	LCRanking        *int64
	LCLastSubmission *string
	LCLastAccepted   *string
	LCCurrentStreak  *int
	LCLongestStreak  *int
	LCBadges         *string
	LCLanguages      *string

	// Compact JSON objects mapping YYYY-MM-DD to an activity count.
	GHContributionHistory *string
	LCSubmissionHistory   *string
}

// StatsColumns is the canonical column order for stats upserts. The write
// path intersects it with the destination table's actual columns, so a
// narrower schema is tolerated.
var StatsColumns = []string{
	"rollnumber",
	"git_followers",
	"git_following",
	"git_public_repo",
	"git_original_repo",
	"git_authored_repo",
	"last_commit_date",
	"git_badges",
	"lc_total_solved",
	"lc_easy",
	"lc_medium",
	"lc_hard",
	"lc_ranking",
	"lc_lastsubmission",
	"lc_lastacceptedsubmission",
	"lc_cur_streak",
	"lc_max_streak",
	"lc_badges",
	"lc_language",
	"gh_contribution_history",
	"lc_submission_history",
}

// Row returns the column-to-value map for persistence. Nil pointers become SQL
// NULLs so a re-run overwrites stale values.
func (s *StudentStats) Row() map[string]any {
	return map[string]any{
		"rollnumber":                s.RollNumber,
		"git_followers":             intVal(s.GitFollowers),
		"git_following":             intVal(s.GitFollowing),
		"git_public_repo":           intVal(s.GitPublicRepos),
		"git_original_repo":         intVal(s.GitOriginalRepos),
		"git_authored_repo":         intVal(s.GitAuthoredRepos),
		"last_commit_date":          strVal(s.LastCommitDate),
		"git_badges":                strVal(s.GitBadges),
		"lc_total_solved":           intVal(s.LCTotalSolved),
		"lc_easy":                   intVal(s.LCEasy),
		"lc_medium":                 intVal(s.LCMedium),
		"lc_hard":                   intVal(s.LCHard),
		"lc_ranking":                int64Val(s.LCRanking),
		"lc_lastsubmission":         strVal(s.LCLastSubmission),
		"lc_lastacceptedsubmission": strVal(s.LCLastAccepted),
		"lc_cur_streak":             intVal(s.LCCurrentStreak),
		"lc_max_streak":             intVal(s.LCLongestStreak),
		"lc_badges":                 strVal(s.LCBadges),
		"lc_language":               strVal(s.LCLanguages),
		"gh_contribution_history":   strVal(s.GHContributionHistory),
		"lc_submission_history":     strVal(s.LCSubmissionHistory),
	}
}

func intVal(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func int64Val(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strVal(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// Notification marks a currently flagged staleness condition. At most one
// active reason exists per (table, roll number) pair.
type Notification struct {
	TableName  string `db:"table_name"`
	RollNumber int64  `db:"rollnumber"`
	Name       string `db:"name"`
	Reason     string `db:"reason"`
}
