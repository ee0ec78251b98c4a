package analytics

import (
	"fmt"
	"riftrewind/api/dto"
	clashfetcher "riftrewind/fetcher/data/clash"
	masteryfetcher "riftrewind/fetcher/data/mastery"
	rotationfetcher "riftrewind/fetcher/data/rotation"
)

// AnalyzeClash summarizes tournament participation.
func AnalyzeClash(entries []clashfetcher.ClashEntry) *dto.ClashInsight {
	if len(entries) == 0 {
		return &dto.ClashInsight{
			HasParticipated: false,
			Message:         "No Clash tournament participation",
		}
	}

	uniqueTeams := make(map[string]struct{})
	for _, entry := range entries {
		if entry.TeamId != "" {
			uniqueTeams[entry.TeamId] = struct{}{}
		}
	}

	totalTournaments := len(entries)

	var level string
	switch {
	case totalTournaments >= 5:
		level = "High"
	case totalTournaments >= 2:
		level = "Medium"
	default:
		level = "Casual"
	}

	return &dto.ClashInsight{
		HasParticipated:  true,
		TotalTournaments: totalTournaments,
		UniqueTeams:      len(uniqueTeams),
		CompetitiveLevel: level,
		Insights: []string{
			fmt.Sprintf("🏆 Participated in %d Clash tournament%s", totalTournaments, plural(totalTournaments)),
			fmt.Sprintf("👥 Played with %d different team%s", len(uniqueTeams), plural(len(uniqueTeams))),
		},
	}
}

// AnalyzeMastery maps the total mastery score to an ordinal tier and
// summarizes the champion pool from the provided top masteries.
func AnalyzeMastery(totalScore int64, topMasteries []masteryfetcher.ChampionMastery) *dto.MasteryInsight {
	if totalScore == 0 {
		return &dto.MasteryInsight{
			TotalScore: 0,
			Message:    "No mastery data available",
		}
	}

	var tier, tierEmoji string
	switch {
	case totalScore >= 1000000:
		tier, tierEmoji = "Legendary", "🌟"
	case totalScore >= 500000:
		tier, tierEmoji = "Master", "👑"
	case totalScore >= 250000:
		tier, tierEmoji = "Expert", "⭐"
	case totalScore >= 100000:
		tier, tierEmoji = "Experienced", "✨"
	default:
		tier, tierEmoji = "Developing", "🎮"
	}

	var mastery7, mastery6, mastery5 int
	for _, mastery := range topMasteries {
		switch mastery.ChampionLevel {
		case 7:
			mastery7++
		case 6:
			mastery6++
		case 5:
			mastery5++
		}
	}

	diversityScore := len(topMasteries) * 10
	if diversityScore > 100 {
		diversityScore = 100
	}

	var diversityRating string
	switch {
	case diversityScore >= 70:
		diversityRating = "High"
	case diversityScore >= 40:
		diversityRating = "Medium"
	default:
		diversityRating = "Low"
	}

	insights := []string{
		fmt.Sprintf("%s %s mastery tier (%s points)", tierEmoji, tier, formatThousands(totalScore)),
	}
	if mastery7 > 0 {
		insights = append(insights, fmt.Sprintf("🏆 %d Mastery 7 champion%s", mastery7, plural(mastery7)))
	}
	if diversityScore >= 80 {
		insights = append(insights, "🎯 Diverse champion pool - adaptable player")
	} else if diversityScore <= 40 {
		insights = append(insights, "🔥 One-trick specialist - deep mastery")
	}

	return &dto.MasteryInsight{
		TotalScore:        totalScore,
		Tier:              tier,
		Mastery7Champions: mastery7,
		Mastery6Champions: mastery6,
		Mastery5Champions: mastery5,
		DiversityScore:    diversityScore,
		DiversityRating:   diversityRating,
		Insights:          insights,
	}
}

// AnalyzeRotationUsage computes the overlap between the current free
// rotation and the champions played recently. A rate needs a non-empty
// recent play set.
func AnalyzeRotationUsage(rotation *rotationfetcher.ChampionRotation, recentChampions []int) *dto.RotationInsight {
	if rotation == nil {
		return &dto.RotationInsight{Available: false}
	}

	allFree := make(map[int]struct{})
	for _, championId := range rotation.FreeChampionIds {
		allFree[championId] = struct{}{}
	}
	for _, championId := range rotation.FreeChampionIdsForNewPlayers {
		allFree[championId] = struct{}{}
	}

	recentPlayed := make(map[int]struct{})
	for _, championId := range recentChampions {
		recentPlayed[championId] = struct{}{}
	}

	if len(recentPlayed) == 0 {
		return &dto.RotationInsight{
			Available:         true,
			UsesFreeChampions: false,
			Message:           "Not enough recent games to analyze",
		}
	}

	playedFree := 0
	for championId := range recentPlayed {
		if _, isFree := allFree[championId]; isFree {
			playedFree++
		}
	}

	usageRate := float64(playedFree) / float64(len(recentPlayed)) * 100

	var insights []string
	switch {
	case usageRate >= 50:
		insights = append(insights,
			"🆓 Frequently plays free rotation champions",
			"💡 Consider expanding your champion pool with owned champions")
	case usageRate >= 25:
		insights = append(insights, "⚖️ Balanced mix of owned and free champions")
	default:
		insights = append(insights, "💎 Owns most played champions - committed player")
	}

	return &dto.RotationInsight{
		Available:           true,
		CurrentFreeCount:    len(rotation.FreeChampionIds),
		PlayedFreeChampions: playedFree,
		FreeUsageRate:       round1(usageRate),
		UsesFreeChampions:   usageRate > 0,
		Insights:            insights,
	}
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// formatThousands renders an integer with comma separators.
func formatThousands(value int64) string {
	formatted := fmt.Sprintf("%d", value)
	for i := len(formatted) - 3; i > 0; i -= 3 {
		formatted = formatted[:i] + "," + formatted[i:]
	}
	return formatted
}
