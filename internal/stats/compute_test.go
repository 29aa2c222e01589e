package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progress_tracker/internal/payload"
	"progress_tracker/testdata/utils"
)

func TestCompute(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	git := payload.Object{
		"followers":         float64(10),
		"following":         float64(5),
		"public_repo_count": float64(12),
		"original_repos": map[string]any{
			"repo-a": map[string]any{},
			"repo-b": map[string]any{},
		},
		"authored_forks": map[string]any{
			"fork-a": map[string]any{},
		},
		"overall_last_commit": map[string]any{
			"date": "2026-08-12T10:00:00Z",
		},
		"badges": map[string]any{
			"pull-shark":   map[string]any{},
			"arctic-vault": map[string]any{},
		},
	}

	lcProfile := payload.Object{
		"totalSolved":  float64(100),
		"easySolved":   float64(50),
		"mediumSolved": float64(30),
		"hardSolved":   float64(20),
		"ranking":      float64(2345),
		"recentSubmissions": []any{
			map[string]any{"statusDisplay": "Wrong Answer", "timestamp": epoch(today)},
			map[string]any{"statusDisplay": "Accepted", "timestamp": epoch(yesterday)},
		},
		"submissionCalendar": map[string]any{
			epoch(today):     float64(2),
			epoch(yesterday): float64(1),
		},
	}

	lcLang := payload.Object{
		"matchedUser": map[string]any{
			"languageProblemCount": []any{
				map[string]any{"languageName": "Go", "problemsSolved": float64(60)},
				map[string]any{"languageName": "Python3", "problemsSolved": float64(40)},
			},
		},
	}

	lcBadges := payload.Object{"badgesCount": float64(4)}

	gitContri := payload.Object{
		"weeks": []any{
			map[string]any{
				"contributionDays": []any{
					map[string]any{"date": yesterday, "contributionCount": float64(3)},
				},
			},
		},
	}

	s := Compute(git, lcProfile, lcLang, lcBadges, gitContri, payload.Object{})

	assert.Equal(t, utils.Ptr(10), s.GitFollowers)
	assert.Equal(t, utils.Ptr(5), s.GitFollowing)
	assert.Equal(t, utils.Ptr(12), s.GitPublicRepos)
	assert.Equal(t, utils.Ptr(2), s.GitOriginalRepos)
	assert.Equal(t, utils.Ptr(1), s.GitAuthoredRepos)
	assert.Equal(t, utils.Ptr("2026-08-12"), s.LastCommitDate)
	assert.Equal(t, utils.Ptr("arctic-vault,pull-shark"), s.GitBadges)

	assert.Equal(t, utils.Ptr(100), s.LCTotalSolved)
	assert.Equal(t, utils.Ptr(50), s.LCEasy)
	assert.Equal(t, utils.Ptr(30), s.LCMedium)
	assert.Equal(t, utils.Ptr(20), s.LCHard)
	assert.Equal(t, utils.Ptr(int64(2345)), s.LCRanking)

	// Last submission is the newest entry; last accepted skips the rejected
	// one.
	assert.Equal(t, utils.Ptr(today), s.LCLastSubmission)
	assert.Equal(t, utils.Ptr(yesterday), s.LCLastAccepted)

	assert.Equal(t, utils.Ptr("Go,Python3"), s.LCLanguages)
	assert.Equal(t, utils.Ptr("4"), s.LCBadges)

	require.NotNil(t, s.LCSubmissionHistory)
	lcHistory, err := ParseHistory(*s.LCSubmissionHistory)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{today: 2, yesterday: 1}, lcHistory)

	require.NotNil(t, s.LCCurrentStreak)
	require.NotNil(t, s.LCLongestStreak)
	assert.Equal(t, 2, *s.LCCurrentStreak)
	assert.Equal(t, 2, *s.LCLongestStreak)

	require.NotNil(t, s.GHContributionHistory)
	ghHistory, err := ParseHistory(*s.GHContributionHistory)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{yesterday: 3}, ghHistory)
}

func TestComputeEmptyPayloads(t *testing.T) {
	s := Compute(nil, nil, nil, nil, nil, nil)

	// Repo counts are always present, mirroring how the tracked tables are
	// populated.
	assert.Equal(t, utils.Ptr(0), s.GitOriginalRepos)
	assert.Equal(t, utils.Ptr(0), s.GitAuthoredRepos)

	assert.Nil(t, s.GitFollowers)
	assert.Nil(t, s.LastCommitDate)
	assert.Nil(t, s.GitBadges)
	assert.Nil(t, s.LCTotalSolved)
	assert.Nil(t, s.LCRanking)
	assert.Nil(t, s.LCLastSubmission)
	assert.Nil(t, s.LCLastAccepted)
	assert.Nil(t, s.LCLanguages)
	assert.Nil(t, s.LCBadges)
	assert.Nil(t, s.LCSubmissionHistory)
	assert.Nil(t, s.LCCurrentStreak)
	assert.Nil(t, s.LCLongestStreak)
	assert.Nil(t, s.GHContributionHistory)
}

func TestComputeAcceptedCaseInsensitive(t *testing.T) {
	day := "2026-08-20"
	lcProfile := payload.Object{
		"recentSubmissions": []any{
			map[string]any{"statusDisplay": "ACCEPTED", "timestamp": epoch(day)},
		},
	}

	s := Compute(nil, lcProfile, nil, nil, nil, nil)

	assert.Equal(t, utils.Ptr(day), s.LCLastSubmission)
	assert.Equal(t, utils.Ptr(day), s.LCLastAccepted)
}
