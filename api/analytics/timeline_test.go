package analytics

import (
	matchfetcher "riftrewind/fetcher/data/match"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildTimeline creates a timeline with one frame per minute, the subject
// as participant 1 accruing fixed CS and gold per minute.
func buildTimeline(frameCount int, csPerMinute int, goldPerMinute int) *matchfetcher.MatchTimeline {
	frames := make([]matchfetcher.MatchTimelineFrame, frameCount)
	for minute := range frames {
		frames[minute] = matchfetcher.MatchTimelineFrame{
			ParticipantFrames: map[string]matchfetcher.ParticipantFrames{
				"1": {
					ParticipantId: 1,
					MinionsKilled: csPerMinute * minute,
					TotalGold:     goldPerMinute * minute,
				},
			},
		}
	}
	return &matchfetcher.MatchTimeline{
		Info: matchfetcher.MatchTimelineData{Frames: frames},
	}
}

func TestAnalyzeTimelineMissing(t *testing.T) {
	insight := AnalyzeTimeline(nil, 1, true)
	assert.False(t, insight.Available)
	assert.Nil(t, insight.LaningPhase)
}

func TestAnalyzeTimelineShortTimeline(t *testing.T) {
	// Fewer than 10 frames, all minute marks past the end read zero.
	insight := AnalyzeTimeline(buildTimeline(8, 8, 400), 1, false)

	assert.True(t, insight.Available)
	assert.Equal(t, 0, insight.LaningPhase.CSAt10)
	assert.Equal(t, 0, insight.LaningPhase.CSAt15)
	assert.Equal(t, 0, insight.LaningPhase.CSAt20)
	assert.Equal(t, 0, insight.LaningPhase.GoldAt15)
	assert.Equal(t, float64(0), insight.LaningPhase.CSPerMin15)
}

func TestAnalyzeTimelineLaningPhase(t *testing.T) {
	insight := AnalyzeTimeline(buildTimeline(25, 8, 400), 1, false)

	assert.Equal(t, 80, insight.LaningPhase.CSAt10)
	assert.Equal(t, 120, insight.LaningPhase.CSAt15)
	assert.Equal(t, 160, insight.LaningPhase.CSAt20)
	assert.Equal(t, 6000, insight.LaningPhase.GoldAt15)
	assert.Equal(t, float64(8), insight.LaningPhase.CSPerMin15)
}

func TestAnalyzeTimelineComeback(t *testing.T) {
	tests := []struct {
		name       string
		frames     int
		goldPerMin int
		won        bool
		isComeback bool
	}{
		{
			name:       "lossNeverComeback",
			frames:     25,
			goldPerMin: 100,
			won:        false,
			isComeback: false,
		},
		{
			name:       "tooFewFrames",
			frames:     14,
			goldPerMin: 100,
			won:        true,
			isComeback: false,
		},
		{
			name:       "winFromBehind",
			frames:     25,
			goldPerMin: 100,
			won:        true,
			isComeback: true,
		},
		{
			name:       "winAhead",
			frames:     25,
			goldPerMin: 400,
			won:        true,
			isComeback: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := AnalyzeTimeline(buildTimeline(tt.frames, 8, tt.goldPerMin), 1, tt.won)
			assert.Equal(t, tt.isComeback, insight.Comeback.IsComeback)
			if tt.isComeback {
				// 100 gold per minute leaves 1500 at 15, 3500 short.
				assert.Equal(t, 3500, insight.Comeback.GoldDeficit15Min)
			}
		})
	}
}

func TestAnalyzeTimelineFirstBlood(t *testing.T) {
	killerId := 1

	timeline := buildTimeline(12, 8, 400)
	timeline.Info.Frames[3].Events = []matchfetcher.EventFrame{
		{
			Type:      "CHAMPION_KILL",
			KillerId:  &killerId,
			Timestamp: 185000,
		},
	}

	insight := AnalyzeTimeline(timeline, 1, true)

	assert.True(t, insight.FirstBlood.Participated)
	assert.Equal(t, "killer", insight.FirstBlood.Role)
	assert.Equal(t, int64(185), insight.FirstBlood.Timestamp)
}

func TestAnalyzeTimelineFirstBloodAssist(t *testing.T) {
	killerId := 4

	timeline := buildTimeline(12, 8, 400)
	timeline.Info.Frames[2].Events = []matchfetcher.EventFrame{
		{
			Type:                    "CHAMPION_KILL",
			KillerId:                &killerId,
			AssistingParticipantIds: []int{1, 5},
			Timestamp:               120000,
		},
	}

	insight := AnalyzeTimeline(timeline, 1, true)

	assert.True(t, insight.FirstBlood.Participated)
	assert.Equal(t, "assist", insight.FirstBlood.Role)
}

func TestAnalyzeTimelineFirstBloodOutsideWindow(t *testing.T) {
	killerId := 1

	// Kill at frame 11 sits outside the ten frame scan.
	timeline := buildTimeline(15, 8, 400)
	timeline.Info.Frames[11].Events = []matchfetcher.EventFrame{
		{Type: "CHAMPION_KILL", KillerId: &killerId, Timestamp: 660000},
	}

	insight := AnalyzeTimeline(timeline, 1, true)
	assert.False(t, insight.FirstBlood.Participated)
}

func TestRateEarlyGame(t *testing.T) {
	tests := []struct {
		name     string
		csAt10   int
		goldAt15 int
		expected string
	}{
		{name: "excellent", csAt10: 95, goldAt15: 6500, expected: "Excellent"},
		{name: "good", csAt10: 90, goldAt15: 4000, expected: "Good"},
		{name: "average", csAt10: 80, goldAt15: 4000, expected: "Average"},
		{name: "needsImprovement", csAt10: 50, goldAt15: 3000, expected: "Needs improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rateEarlyGame(tt.csAt10, tt.goldAt15))
		})
	}
}
