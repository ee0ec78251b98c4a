package analytics

import (
	leaguefetcher "riftrewind/fetcher/data/league"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringPtr(value string) *string {
	return &value
}

func buildLeagueEntry(queueType string, tier string, rank string, lp int, wins int, losses int) leaguefetcher.LeagueEntry {
	return leaguefetcher.LeagueEntry{
		QueueType:    stringPtr(queueType),
		Tier:         stringPtr(tier),
		Rank:         stringPtr(rank),
		LeaguePoints: lp,
		Wins:         wins,
		Losses:       losses,
	}
}

func TestAnalyzeRankNoEntries(t *testing.T) {
	insight := AnalyzeRank(nil)

	assert.False(t, insight.HasRanked)
	assert.Equal(t, "No ranked games this season", insight.Message)
}

func TestAnalyzeRankOnlyFlexQueue(t *testing.T) {
	entries := []leaguefetcher.LeagueEntry{
		buildLeagueEntry("RANKED_FLEX_SR", "GOLD", "II", 50, 30, 20),
	}

	insight := AnalyzeRank(entries)

	assert.False(t, insight.HasRanked)
	assert.Equal(t, "No solo queue ranked games", insight.Message)
}

func TestAnalyzeRankSoloQueue(t *testing.T) {
	entries := []leaguefetcher.LeagueEntry{
		buildLeagueEntry("RANKED_FLEX_SR", "PLATINUM", "I", 10, 5, 5),
		buildLeagueEntry("RANKED_SOLO_5x5", "GOLD", "II", 50, 60, 40),
	}

	insight := AnalyzeRank(entries)

	assert.True(t, insight.HasRanked)
	assert.Equal(t, "GOLD", insight.Tier)
	assert.Equal(t, "GOLD II", insight.FullRank)
	assert.Equal(t, float64(60), insight.WinRate)
	// 1200 base + 200 division + 50 LP.
	assert.Equal(t, 1450, insight.MMRProxy)
	assert.Equal(t, float64(65), insight.Percentile)
	assert.Equal(t, "Top 35.0%", insight.PercentileText)
	assert.NotNil(t, insight.RankDisplay)
	assert.Equal(t, "#FFD700", insight.RankDisplay.TierColor)
}

func TestAnalyzeRankInsightThresholds(t *testing.T) {
	tests := []struct {
		name     string
		entry    leaguefetcher.LeagueEntry
		expected string
	}{
		{
			name:     "highWinRate",
			entry:    buildLeagueEntry("RANKED_SOLO_5x5", "SILVER", "I", 10, 61, 39),
			expected: "climbing fast",
		},
		{
			name:     "lowWinRate",
			entry:    buildLeagueEntry("RANKED_SOLO_5x5", "SILVER", "I", 10, 40, 60),
			expected: "focus on consistency",
		},
		{
			name:     "closeToPromos",
			entry:    buildLeagueEntry("RANKED_SOLO_5x5", "SILVER", "I", 80, 50, 50),
			expected: "Close to promos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := AnalyzeRank([]leaguefetcher.LeagueEntry{tt.entry})

			found := false
			for _, line := range insight.Insights {
				if strings.Contains(line, tt.expected) {
					found = true
				}
			}
			assert.True(t, found, "expected insight containing %q, got %v", tt.expected, insight.Insights)
		})
	}
}

func TestAnalyzeRankHotStreakAndVeteran(t *testing.T) {
	entry := buildLeagueEntry("RANKED_SOLO_5x5", "DIAMOND", "IV", 20, 50, 50)
	entry.HotStreak = true
	entry.Veteran = true

	insight := AnalyzeRank([]leaguefetcher.LeagueEntry{entry})

	assert.True(t, insight.HotStreak)
	assert.True(t, insight.Veteran)
	assert.Len(t, insight.Insights, 2)
}
