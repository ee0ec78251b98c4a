package analytics

import (
	clashfetcher "riftrewind/fetcher/data/clash"
	masteryfetcher "riftrewind/fetcher/data/mastery"
	rotationfetcher "riftrewind/fetcher/data/rotation"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeClashNoParticipation(t *testing.T) {
	insight := AnalyzeClash(nil)

	assert.False(t, insight.HasParticipated)
	assert.Equal(t, "No Clash tournament participation", insight.Message)
}

func TestAnalyzeClashCompetitiveLevels(t *testing.T) {
	tests := []struct {
		name        string
		tournaments int
		expected    string
	}{
		{name: "casual", tournaments: 1, expected: "Casual"},
		{name: "medium", tournaments: 2, expected: "Medium"},
		{name: "high", tournaments: 5, expected: "High"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []clashfetcher.ClashEntry
			for i := 0; i < tt.tournaments; i++ {
				entries = append(entries, clashfetcher.ClashEntry{
					TeamId:       "team-1",
					TournamentId: i + 1,
				})
			}

			insight := AnalyzeClash(entries)

			assert.True(t, insight.HasParticipated)
			assert.Equal(t, tt.tournaments, insight.TotalTournaments)
			assert.Equal(t, tt.expected, insight.CompetitiveLevel)
		})
	}
}

func TestAnalyzeClashUniqueTeams(t *testing.T) {
	entries := []clashfetcher.ClashEntry{
		{TeamId: "team-1", TournamentId: 1},
		{TeamId: "team-1", TournamentId: 2},
		{TeamId: "team-2", TournamentId: 3},
		{TournamentId: 4}, // Empty team id is not counted.
	}

	insight := AnalyzeClash(entries)

	assert.Equal(t, 4, insight.TotalTournaments)
	assert.Equal(t, 2, insight.UniqueTeams)
}

func TestAnalyzeMasteryNoData(t *testing.T) {
	insight := AnalyzeMastery(0, nil)

	assert.Equal(t, int64(0), insight.TotalScore)
	assert.Equal(t, "No mastery data available", insight.Message)
	assert.Empty(t, insight.Tier)
}

func TestAnalyzeMasteryTierBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		score    int64
		expected string
	}{
		{name: "developing", score: 99999, expected: "Developing"},
		{name: "experienced", score: 100000, expected: "Experienced"},
		{name: "expert", score: 250000, expected: "Expert"},
		{name: "master", score: 999999, expected: "Master"},
		{name: "legendary", score: 1000000, expected: "Legendary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := AnalyzeMastery(tt.score, nil)
			assert.Equal(t, tt.expected, insight.Tier)
		})
	}
}

func TestAnalyzeMasteryChampionPool(t *testing.T) {
	masteries := []masteryfetcher.ChampionMastery{
		{ChampionId: 103, ChampionLevel: 7},
		{ChampionId: 64, ChampionLevel: 7},
		{ChampionId: 238, ChampionLevel: 6},
		{ChampionId: 98, ChampionLevel: 5},
		{ChampionId: 99, ChampionLevel: 4},
	}

	insight := AnalyzeMastery(500000, masteries)

	assert.Equal(t, 2, insight.Mastery7Champions)
	assert.Equal(t, 1, insight.Mastery6Champions)
	assert.Equal(t, 1, insight.Mastery5Champions)
	assert.Equal(t, 50, insight.DiversityScore)
	assert.Equal(t, "Medium", insight.DiversityRating)
}

func TestAnalyzeMasteryDiversityCap(t *testing.T) {
	var masteries []masteryfetcher.ChampionMastery
	for i := 0; i < 15; i++ {
		masteries = append(masteries, masteryfetcher.ChampionMastery{ChampionId: i + 1})
	}

	insight := AnalyzeMastery(200000, masteries)

	assert.Equal(t, 100, insight.DiversityScore)
	assert.Equal(t, "High", insight.DiversityRating)
}

func TestAnalyzeRotationMissing(t *testing.T) {
	insight := AnalyzeRotationUsage(nil, []int{103})
	assert.False(t, insight.Available)
}

func TestAnalyzeRotationNoRecentGames(t *testing.T) {
	rotation := &rotationfetcher.ChampionRotation{FreeChampionIds: []int{1, 2, 3}}

	insight := AnalyzeRotationUsage(rotation, nil)

	assert.True(t, insight.Available)
	assert.False(t, insight.UsesFreeChampions)
	assert.Equal(t, "Not enough recent games to analyze", insight.Message)
}

func TestAnalyzeRotationUsageRate(t *testing.T) {
	rotation := &rotationfetcher.ChampionRotation{
		FreeChampionIds:              []int{103, 64},
		FreeChampionIdsForNewPlayers: []int{1},
	}

	// Two of four distinct recent champions are free.
	insight := AnalyzeRotationUsage(rotation, []int{103, 1, 238, 98})

	assert.True(t, insight.Available)
	assert.True(t, insight.UsesFreeChampions)
	assert.Equal(t, 2, insight.CurrentFreeCount)
	assert.Equal(t, 2, insight.PlayedFreeChampions)
	assert.Equal(t, float64(50), insight.FreeUsageRate)
	assert.NotEmpty(t, insight.Insights)
}

func TestAnalyzeRotationNoOverlap(t *testing.T) {
	rotation := &rotationfetcher.ChampionRotation{FreeChampionIds: []int{1, 2}}

	insight := AnalyzeRotationUsage(rotation, []int{103, 64})

	assert.False(t, insight.UsesFreeChampions)
	assert.Equal(t, float64(0), insight.FreeUsageRate)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "500", formatThousands(500))
	assert.Equal(t, "1,000", formatThousands(1000))
	assert.Equal(t, "1,234,567", formatThousands(1234567))
}
