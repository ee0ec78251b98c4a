package analytics

import (
	"fmt"
	"riftrewind/api/dto"
	challengesfetcher "riftrewind/fetcher/data/challenges"
)

// Locale used to resolve challenge names from the config reference.
const challengeLocale = "en_US"

// EnrichChallenges joins the player's top rare challenges against the
// challenge configuration reference to attach readable metadata.
// Ids missing from the config still emit a generated placeholder name.
func EnrichChallenges(player *challengesfetcher.PlayerChallenges, config []challengesfetcher.ChallengeConfig) *dto.EnrichedChallenges {
	if player == nil || len(config) == 0 {
		return &dto.EnrichedChallenges{
			Available: false,
			Message:   "Challenge data not available",
		}
	}

	configById := make(map[int64]*challengesfetcher.ChallengeConfig, len(config))
	for i := range config {
		configById[config[i].Id] = &config[i]
	}

	entries := player.Challenges
	if len(entries) > 10 {
		entries = entries[:10]
	}

	var enriched []dto.EnrichedChallenge
	for _, entry := range entries {
		if entry.Percentile < rarePercentile {
			continue
		}

		name := fmt.Sprintf("Challenge %d", entry.ChallengeId)
		description := "No description"
		var tags []string

		if info, exists := configById[entry.ChallengeId]; exists {
			if localized, hasLocale := info.LocalizedNames[challengeLocale]; hasLocale {
				if localizedName := localized["name"]; localizedName != "" {
					name = localizedName
				}
				if localizedDescription := localized["description"]; localizedDescription != "" {
					description = localizedDescription
				}
			}
			tags = info.Tags
		}

		enriched = append(enriched, dto.EnrichedChallenge{
			ChallengeId: entry.ChallengeId,
			Name:        name,
			Description: description,
			Percentile:  round1(entry.Percentile),
			Level:       entry.Level,
			Value:       entry.Value,
			Tags:        tags,
			Rarity:      rarityLabel(entry.Percentile),
		})
	}

	return &dto.EnrichedChallenges{
		Available:          true,
		Challenges:         enriched,
		HasNamedChallenges: len(enriched) > 0,
	}
}
