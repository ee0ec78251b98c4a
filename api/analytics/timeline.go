package analytics

import (
	"riftrewind/api/dto"
	matchfetcher "riftrewind/fetcher/data/match"
	"strconv"
)

// Gold a player typically holds at 15 minutes. The comeback check compares
// against this constant instead of the enemy team's gold, which was never
// implemented upstream, so the simplification stays.
const typicalGoldAt15 = 5000

// AnalyzeTimeline extracts the per-minute insight of a single match.
// A missing timeline yields the unavailable marker, never an error.
func AnalyzeTimeline(timeline *matchfetcher.MatchTimeline, participantId int, won bool) *dto.TimelineInsight {
	if timeline == nil || len(timeline.Info.Frames) == 0 {
		return &dto.TimelineInsight{Available: false}
	}

	frames := timeline.Info.Frames

	csAt10 := csAtMinute(frames, participantId, 10)
	csAt15 := csAtMinute(frames, participantId, 15)
	csAt20 := csAtMinute(frames, participantId, 20)
	goldAt15 := goldAtMinute(frames, participantId, 15)

	var csPerMin float64
	if csAt15 > 0 {
		csPerMin = round1(float64(csAt15) / 15)
	}

	return &dto.TimelineInsight{
		Available: true,
		LaningPhase: &dto.LaningPhase{
			CSAt10:     csAt10,
			CSAt15:     csAt15,
			CSAt20:     csAt20,
			CSPerMin15: csPerMin,
			GoldAt15:   goldAt15,
		},
		Comeback:        detectComeback(frames, participantId, won),
		FirstBlood:      checkFirstBlood(frames, participantId),
		EarlyGameRating: rateEarlyGame(csAt10, goldAt15),
	}
}

// participantFrame looks up the subject's frame at a minute mark.
// Minute N maps directly to frame N. Out of range frames read as zero.
func participantFrame(frames []matchfetcher.MatchTimelineFrame, participantId int, minute int) (matchfetcher.ParticipantFrames, bool) {
	if minute >= len(frames) {
		return matchfetcher.ParticipantFrames{}, false
	}
	frame, exists := frames[minute].ParticipantFrames[strconv.Itoa(participantId)]
	return frame, exists
}

func csAtMinute(frames []matchfetcher.MatchTimelineFrame, participantId int, minute int) int {
	frame, exists := participantFrame(frames, participantId, minute)
	if !exists {
		return 0
	}
	return frame.MinionsKilled + frame.JungleMinionsKilled
}

func goldAtMinute(frames []matchfetcher.MatchTimelineFrame, participantId int, minute int) int {
	frame, exists := participantFrame(frames, participantId, minute)
	if !exists {
		return 0
	}
	return frame.TotalGold
}

// detectComeback flags wins where gold at 15 trailed the typical value.
// Only wins with at least 15 frames qualify.
func detectComeback(frames []matchfetcher.MatchTimelineFrame, participantId int, won bool) *dto.Comeback {
	if !won || len(frames) < 15 {
		return &dto.Comeback{IsComeback: false}
	}

	goldAt15 := goldAtMinute(frames, participantId, 15)
	if goldAt15 >= typicalGoldAt15 {
		return &dto.Comeback{
			IsComeback: false,
			Message:    "Led from start",
		}
	}

	return &dto.Comeback{
		IsComeback:       true,
		GoldDeficit15Min: typicalGoldAt15 - goldAt15,
		Message:          "Came from behind to win!",
	}
}

// checkFirstBlood scans kill events in the first 10 frames and returns the
// first one where the subject was the killer or an assistant.
func checkFirstBlood(frames []matchfetcher.MatchTimelineFrame, participantId int) *dto.FirstBlood {
	limit := len(frames)
	if limit > 10 {
		limit = 10
	}

	for _, frame := range frames[:limit] {
		for _, event := range frame.Events {
			if event.Type != "CHAMPION_KILL" {
				continue
			}

			if event.KillerId != nil && *event.KillerId == participantId {
				return &dto.FirstBlood{
					Participated: true,
					Role:         "killer",
					Timestamp:    event.Timestamp / 1000,
				}
			}
			for _, assistant := range event.AssistingParticipantIds {
				if assistant == participantId {
					return &dto.FirstBlood{
						Participated: true,
						Role:         "assist",
						Timestamp:    event.Timestamp / 1000,
					}
				}
			}
		}
	}

	return &dto.FirstBlood{Participated: false}
}

// rateEarlyGame maps CS at 10 and gold at 15 to an ordinal label.
// Average players sit around 70-80 CS at 10 and 5-6k gold at 15.
func rateEarlyGame(csAt10 int, goldAt15 int) string {
	score := 0

	switch {
	case csAt10 >= 90:
		score += 2
	case csAt10 >= 75:
		score++
	}

	switch {
	case goldAt15 >= 6000:
		score += 2
	case goldAt15 >= 5000:
		score++
	}

	switch {
	case score >= 3:
		return "Excellent"
	case score >= 2:
		return "Good"
	case score >= 1:
		return "Average"
	default:
		return "Needs improvement"
	}
}
