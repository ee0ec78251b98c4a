package analytics

import (
	"fmt"
	"riftrewind/api/dto"
	challengesfetcher "riftrewind/fetcher/data/challenges"
	"sort"
)

// Percentile floor for a challenge to count as a rare achievement.
const rarePercentile = 90

// Description of each challenge category, keyed by the API category name.
var categoryDescriptions = map[string]string{
	"TEAMWORK":    "🤝 Team player - excels at coordination",
	"EXPERTISE":   "🎯 Mechanical master - high skill expression",
	"IMAGINATION": "🎨 Creative player - unique strategies",
	"VETERANCY":   "⚔️ Experienced veteran - battle-hardened",
	"COLLECTION":  "📚 Collector - loves variety",
}

// AnalyzeChallenges builds the rare achievement insight from a player's
// challenge data. Nil input yields the unavailable marker.
func AnalyzeChallenges(challenges *challengesfetcher.PlayerChallenges) *dto.ChallengeInsight {
	if challenges == nil {
		return &dto.ChallengeInsight{
			Available: false,
			Message:   "Challenge data not available",
		}
	}

	rare := findRareAchievements(challenges.Challenges)
	categories := analyzeCategories(challenges.CategoryPoints)

	return &dto.ChallengeInsight{
		Available:         true,
		TotalLevel:        challenges.TotalPoints.Level,
		TotalCurrent:      challenges.TotalPoints.Current,
		TotalMax:          challenges.TotalPoints.Max,
		RareAchievements:  rare,
		CategoryStrengths: categories,
		Summary:           challengeSummary(rare, categories),
	}
}

// findRareAchievements keeps challenges at or above the rare percentile,
// sorted descending, truncated to the top five.
func findRareAchievements(entries []challengesfetcher.ChallengeEntry) []dto.RareAchievement {
	var rare []dto.RareAchievement

	for _, entry := range entries {
		if entry.Percentile < rarePercentile {
			continue
		}

		rare = append(rare, dto.RareAchievement{
			ChallengeId: entry.ChallengeId,
			Percentile:  round1(entry.Percentile),
			Level:       entry.Level,
			Value:       entry.Value,
			Rarity:      rarityLabel(entry.Percentile),
			Icon:        rarityIcon(entry.Percentile),
		})
	}

	sort.SliceStable(rare, func(i, j int) bool {
		return rare[i].Percentile > rare[j].Percentile
	})

	if len(rare) > 5 {
		rare = rare[:5]
	}

	return rare
}

func rarityLabel(percentile float64) string {
	switch {
	case percentile >= 99:
		return "Legendary"
	case percentile >= 95:
		return "Epic"
	default:
		return "Rare"
	}
}

func rarityIcon(percentile float64) string {
	switch {
	case percentile >= 99:
		return "🏆"
	case percentile >= 95:
		return "⭐"
	default:
		return "💎"
	}
}

// analyzeCategories picks the category with the highest points.
// Ties keep the payload's key order, which CategoryPoints preserves.
func analyzeCategories(categories challengesfetcher.CategoryPoints) *dto.CategoryStrengths {
	if len(categories.Order) == 0 {
		return nil
	}

	strongest := categories.Order[0]
	for _, category := range categories.Order[1:] {
		if categories.Points[category] > categories.Points[strongest] {
			strongest = category
		}
	}

	return &dto.CategoryStrengths{
		StrongestCategory: strongest,
		StrongestPoints:   categories.Points[strongest],
		AllCategories:     categories.Points,
		StrengthInfo:      categoryDescriptions[strongest],
	}
}

func challengeSummary(rare []dto.RareAchievement, categories *dto.CategoryStrengths) string {
	if len(rare) == 0 {
		return "Keep playing to unlock rare achievements!"
	}

	strongest := "N/A"
	if categories != nil {
		strongest = categories.StrongestCategory
	}

	return fmt.Sprintf(
		"Earned %d rare achievements (top %.1f%%). Strongest at %s.",
		len(rare), 100-rare[0].Percentile, strongest,
	)
}
