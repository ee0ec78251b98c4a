package analytics

import (
	matchfetcher "riftrewind/fetcher/data/match"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregateMatchesEmptyList(t *testing.T) {
	stats := AggregateMatches(nil, testPuuid)

	assert.Equal(t, 0, stats.TotalGames)
	assert.Equal(t, float64(0), stats.WinRate)
	assert.Equal(t, float64(0), stats.AvgKDA)
	assert.Equal(t, float64(0), stats.AvgGold)
	assert.Empty(t, stats.TopChampions)
	assert.Empty(t, stats.RoleDistribution)
	assert.Empty(t, stats.Monthly)
	assert.Equal(t, "Unknown", stats.MostPlayedRole)
	assert.Nil(t, stats.BestPerformance)
}

func TestAggregateMatchesTotalsInvariant(t *testing.T) {
	matches := buildResultSequence([]bool{true, false, true, true, false})

	// A match without the subject must be skipped, not counted.
	foreign := buildMatch(matchOptions{win: true})
	foreign.Info.Participants[0].Puuid = "someone-else"
	matches = append(matches, foreign)

	stats := AggregateMatches(matches, testPuuid)

	assert.Equal(t, 5, stats.TotalGames)
	assert.Equal(t, stats.TotalGames, stats.TotalWins+stats.TotalLosses)
	assert.Equal(t, 3, stats.TotalWins)
	assert.Equal(t, float64(60), stats.WinRate)
}

func TestAggregateMatchesKDANeverDividesByZero(t *testing.T) {
	matches := []*matchfetcher.MatchData{
		buildMatch(matchOptions{win: true, kills: 10, deaths: 0, assists: 5}),
	}

	stats := AggregateMatches(matches, testPuuid)

	// Deaths floor to 1: (10 + 5) / 1.
	assert.Equal(t, float64(15), stats.AvgKDA)
	assert.GreaterOrEqual(t, stats.AvgKDA, float64(0))
}

func TestAggregateMatchesTopChampions(t *testing.T) {
	var matches []*matchfetcher.MatchData

	// Six champions, champion 1 three games, champion 2 two games, the
	// rest one each. Only five survive the cut.
	for championId := 1; championId <= 6; championId++ {
		games := 1
		if championId == 1 {
			games = 3
		} else if championId == 2 {
			games = 2
		}
		for g := 0; g < games; g++ {
			matches = append(matches, buildMatch(matchOptions{win: true, championId: championId}))
		}
	}

	stats := AggregateMatches(matches, testPuuid)

	assert.Len(t, stats.TopChampions, 5)
	assert.Equal(t, 1, stats.TopChampions[0].ChampionId)
	assert.Equal(t, 3, stats.TopChampions[0].GamesPlayed)
	assert.Equal(t, 2, stats.TopChampions[1].ChampionId)

	// Descending game counts all the way down.
	for i := 1; i < len(stats.TopChampions); i++ {
		assert.GreaterOrEqual(t,
			stats.TopChampions[i-1].GamesPlayed,
			stats.TopChampions[i].GamesPlayed,
		)
	}

	// Single game champions tie, first seen wins.
	assert.Equal(t, 3, stats.TopChampions[2].ChampionId)
	assert.Equal(t, 4, stats.TopChampions[3].ChampionId)
	assert.Equal(t, 5, stats.TopChampions[4].ChampionId)
}

func TestAggregateMatchesBestPerformanceFirstWins(t *testing.T) {
	matches := []*matchfetcher.MatchData{
		buildMatch(matchOptions{win: true, championId: 103, kills: 10, deaths: 2, assists: 10}),
		buildMatch(matchOptions{win: false, championId: 238, kills: 8, deaths: 2, assists: 12}),
	}

	stats := AggregateMatches(matches, testPuuid)

	// Both matches have KDA 10, the earlier one is kept.
	assert.NotNil(t, stats.BestPerformance)
	assert.Equal(t, "Ahri", stats.BestPerformance.Champion)
	assert.True(t, stats.BestPerformance.Win)
}

func TestAggregateMatchesSharesWithinBounds(t *testing.T) {
	matches := buildResultSequence([]bool{true, false, true, false})

	stats := AggregateMatches(matches, testPuuid)

	for _, share := range []float64{
		stats.AvgKillParticipation,
		stats.AvgDamageShare,
		stats.AvgGoldShare,
	} {
		assert.GreaterOrEqual(t, share, float64(0))
		assert.LessOrEqual(t, share, float64(100))
	}
}

func TestAggregateMatchesKillParticipationCapped(t *testing.T) {
	// Assists exceeding team kills must cap at 100 per match.
	match := buildMatch(matchOptions{win: true, kills: 2, assists: 30})
	stats := AggregateMatches([]*matchfetcher.MatchData{match}, testPuuid)

	assert.Equal(t, float64(100), stats.AvgKillParticipation)
}

func TestAggregateMatchesPhaseBuckets(t *testing.T) {
	matches := []*matchfetcher.MatchData{
		buildMatch(matchOptions{win: true, duration: 900, kills: 3, deaths: 1, assists: 0}),
		buildMatch(matchOptions{win: true, duration: 901, kills: 6, deaths: 1, assists: 0}),
		buildMatch(matchOptions{win: true, duration: 1501, kills: 9, deaths: 1, assists: 0}),
	}

	stats := AggregateMatches(matches, testPuuid)

	assert.Equal(t, float64(3), stats.PhasePerformance.EarlyKDA)
	assert.Equal(t, float64(6), stats.PhasePerformance.MidKDA)
	assert.Equal(t, float64(9), stats.PhasePerformance.LateKDA)
}

func TestAggregateMatchesSnowballRate(t *testing.T) {
	matches := []*matchfetcher.MatchData{
		buildMatch(matchOptions{win: true, gold: 5000}),
		buildMatch(matchOptions{win: false, gold: 6000}),
		// Below the threshold, does not qualify either way.
		buildMatch(matchOptions{win: true, gold: 4000}),
	}

	stats := AggregateMatches(matches, testPuuid)

	assert.Equal(t, float64(50), stats.SnowballRate)
}

func TestAggregateMatchesSnowballRateNoQualifying(t *testing.T) {
	matches := []*matchfetcher.MatchData{
		buildMatch(matchOptions{win: true, gold: 4000}),
	}

	stats := AggregateMatches(matches, testPuuid)
	assert.Equal(t, float64(0), stats.SnowballRate)
}

func TestAggregateMatchesMonthlyBuckets(t *testing.T) {
	matches := []*matchfetcher.MatchData{
		buildMatch(matchOptions{win: true, created: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}),
		buildMatch(matchOptions{win: false, created: time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)}),
		buildMatch(matchOptions{win: true, created: time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)}),
	}

	stats := AggregateMatches(matches, testPuuid)

	assert.Len(t, stats.Monthly, 2)
	assert.Equal(t, 2, stats.Monthly["2025-01"].Games)
	assert.Equal(t, 1, stats.Monthly["2025-01"].Wins)
	assert.Equal(t, 1, stats.Monthly["2025-02"].Games)
}

func TestAggregateMatchesMostPlayedRoleInsertionTie(t *testing.T) {
	matches := []*matchfetcher.MatchData{
		buildMatch(matchOptions{win: true, position: "TOP"}),
		buildMatch(matchOptions{win: true, position: "JUNGLE"}),
	}

	stats := AggregateMatches(matches, testPuuid)

	// Tied counts keep the first seen role.
	assert.Equal(t, "Top", stats.MostPlayedRole)
	assert.Equal(t, 1, stats.RoleDistribution["Top"])
	assert.Equal(t, 1, stats.RoleDistribution["Jungle"])
}

func TestAggregateMatchesTrend(t *testing.T) {
	tests := []struct {
		name     string
		results  []bool
		expected string
	}{
		{
			name:     "stableWhenEqual",
			results:  []bool{true, false, true, false},
			expected: "Stable",
		},
		{
			name: "improvingRecentAboveOverall",
			// Recent 10 all wins, older games all losses.
			results: append(
				[]bool{true, true, true, true, true, true, true, true, true, true},
				false, false, false, false, false,
			),
			expected: "Improving",
		},
		{
			name: "decliningRecentBelowOverall",
			results: append(
				[]bool{false, false, false, false, false, false, false, false, false, false},
				true, true, true, true, true,
			),
			expected: "Declining",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := AggregateMatches(buildResultSequence(tt.results), testPuuid)
			assert.Equal(t, tt.expected, stats.RecentTrend)
		})
	}
}

func TestAggregateMatchesDurationStats(t *testing.T) {
	matches := []*matchfetcher.MatchData{
		buildMatch(matchOptions{win: true, duration: 1200}),
		buildMatch(matchOptions{win: false, duration: 2400}),
		buildMatch(matchOptions{win: true, duration: 1800}),
	}

	stats := AggregateMatches(matches, testPuuid)

	assert.Equal(t, float64(1800), stats.AvgGameDuration)
	assert.Equal(t, 2400, stats.LongestGame)
	assert.Equal(t, 1200, stats.ShortestGame)
}

func TestAggregateMatchesIdempotent(t *testing.T) {
	matches := buildResultSequence([]bool{true, false, true, true, false, true})

	first := AggregateMatches(matches, testPuuid)
	second := AggregateMatches(matches, testPuuid)

	assert.Equal(t, first, second)
}

func TestMaxStreaks(t *testing.T) {
	tests := []struct {
		name            string
		results         []bool
		expectedMaxWin  int
		expectedMaxLoss int
	}{
		{
			name:            "openTrailingStreakCounts",
			results:         []bool{true, true, true, false, false, true, true, true, true, true},
			expectedMaxWin:  5,
			expectedMaxLoss: 2,
		},
		{
			name:            "empty",
			results:         nil,
			expectedMaxWin:  0,
			expectedMaxLoss: 0,
		},
		{
			name:            "singleWin",
			results:         []bool{true},
			expectedMaxWin:  1,
			expectedMaxLoss: 0,
		},
		{
			name:            "allLosses",
			results:         []bool{false, false, false},
			expectedMaxWin:  0,
			expectedMaxLoss: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxWin, maxLoss := MaxStreaks(tt.results)
			assert.Equal(t, tt.expectedMaxWin, maxWin)
			assert.Equal(t, tt.expectedMaxLoss, maxLoss)
		})
	}
}
