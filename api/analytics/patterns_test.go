package analytics

import (
	matchfetcher "riftrewind/fetcher/data/match"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectPatternsCapped(t *testing.T) {
	// Enough wins in a single evening slot and role to fire several
	// passes at once, the result must never exceed the cap.
	var matches []*matchfetcher.MatchData
	for i := 0; i < 20; i++ {
		matches = append(matches, buildMatch(matchOptions{
			win:      true,
			position: "TOP",
			duration: 2400,
			created:  time.Date(2025, 3, 10+i%5, 20, 0, 0, 0, time.UTC),
		}))
	}

	gems := DetectPatterns(matches, testPuuid)

	assert.NotEmpty(t, gems)
	assert.LessOrEqual(t, len(gems), 6)
}

func TestDetectPatternsEmptyMatches(t *testing.T) {
	gems := DetectPatterns(nil, testPuuid)
	assert.Empty(t, gems)
}

func TestStreakPatternsOpenTrailingRun(t *testing.T) {
	// W W W L L W W W W W, the trailing five game run must be counted
	// even though the sequence ends inside it.
	matches := buildResultSequence([]bool{
		true, true, true, false, false, true, true, true, true, true,
	})

	gems := streakPatterns(matches, testPuuid)

	assert.Len(t, gems, 1)
	assert.Equal(t, "Win Streak Master", gems[0].Title)
	assert.Contains(t, gems[0].Description, "5-game win streak")
}

func TestStreakPatternsLossStreak(t *testing.T) {
	matches := buildResultSequence([]bool{
		false, false, false, false, false, true,
	})

	gems := streakPatterns(matches, testPuuid)

	assert.Len(t, gems, 1)
	assert.Equal(t, "Resilience Badge", gems[0].Title)
}

func TestTimePatternsThresholds(t *testing.T) {
	// Four evening wins are below the five game floor, no pattern.
	var matches []*matchfetcher.MatchData
	for n := 0; n < 4; n++ {
		matches = append(matches, buildMatch(matchOptions{
			win:     true,
			created: time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC),
		}))
	}

	assert.Empty(t, timePatterns(matches, testPuuid))

	// A fifth win clears both floors, the evening and the weekday
	// pattern fire together.
	matches = append(matches, buildMatch(matchOptions{
		win:     true,
		created: time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC),
	}))

	gems := timePatterns(matches, testPuuid)
	assert.Len(t, gems, 2)
	assert.Equal(t, "Evening Performer", gems[0].Title)
	assert.Equal(t, "Monday Specialist", gems[1].Title)
}

func TestTimeSlotWindows(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{hour: 0, expected: "night"},
		{hour: 5, expected: "night"},
		{hour: 6, expected: "morning"},
		{hour: 11, expected: "morning"},
		{hour: 12, expected: "afternoon"},
		{hour: 17, expected: "afternoon"},
		{hour: 18, expected: "evening"},
		{hour: 23, expected: "evening"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, timeSlot(tt.hour))
	}
}

func TestRolePatternsDominator(t *testing.T) {
	var matches []*matchfetcher.MatchData

	// Five top wins qualify, three jungle wins stay under the floor.
	for n := 0; n < 5; n++ {
		matches = append(matches, buildMatch(matchOptions{
			win: true, position: "TOP", kills: 5, deaths: 2, assists: 5,
		}))
	}
	for n := 0; n < 3; n++ {
		matches = append(matches, buildMatch(matchOptions{win: true, position: "JUNGLE"}))
	}

	gems := rolePatterns(matches, testPuuid)

	assert.Len(t, gems, 1)
	assert.Equal(t, "TOP Dominator", gems[0].Title)
	assert.Equal(t, "role", gems[0].Category)
}

func TestSynergyPatternsIsNoOp(t *testing.T) {
	matches := buildResultSequence([]bool{true, true, true})
	assert.Empty(t, synergyPatterns(matches, testPuuid))
}

func TestLongGamePatterns(t *testing.T) {
	var matches []*matchfetcher.MatchData

	// Ten long games with seven wins clears both floors.
	for i := 0; i < 10; i++ {
		matches = append(matches, buildMatch(matchOptions{
			win:      i < 7,
			duration: 2200,
		}))
	}

	gems := longGamePatterns(matches, testPuuid)

	assert.Len(t, gems, 1)
	assert.Equal(t, "Comeback King", gems[0].Title)
	assert.Contains(t, gems[0].Description, "70.0%")
}

func TestLongGamePatternsSampleFloor(t *testing.T) {
	var matches []*matchfetcher.MatchData
	for n := 0; n < 9; n++ {
		matches = append(matches, buildMatch(matchOptions{win: true, duration: 2200}))
	}

	assert.Empty(t, longGamePatterns(matches, testPuuid))
}
