package gemsservice

import (
	"context"
	"fmt"
	"riftrewind/api/analytics"
	"riftrewind/api/dto"
	"riftrewind/api/services"
	"riftrewind/pkg/bedrock"
	"riftrewind/pkg/regions"
	"strings"
)

// GemsService detects hidden gameplay patterns and optionally layers a
// model generated narrative on top of them.
type GemsService struct {
	clients services.ClientProvider
	bedrock *bedrock.Client
}

// GemsServiceDeps holds the external dependencies of the service.
// Bedrock may be nil, discovery then runs without a narrative.
type GemsServiceDeps struct {
	Clients services.ClientProvider
	Bedrock *bedrock.Client
}

// NewGemsService creates the gems service.
func NewGemsService(deps *GemsServiceDeps) *GemsService {
	return &GemsService{
		clients: deps.Clients,
		bedrock: deps.Bedrock,
	}
}

// DiscoverGems runs the pattern passes over a player's recent matches.
// The narrative enrichment is best effort, a model failure still returns
// the heuristic discoveries.
func (gs *GemsService) DiscoverGems(ctx context.Context, region regions.SubRegion, gameName string, tagLine string, matchCount int) (*dto.HiddenGemsResponse, error) {
	client := gs.clients.Get(region)

	player, err := services.ResolvePlayer(ctx, client, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	matches, err := services.FetchMatches(ctx, client, player.Account.Puuid, matchCount)
	if err != nil {
		return nil, err
	}

	stats := analytics.AggregateMatches(matches, player.Account.Puuid)
	gems := analytics.DetectPatterns(matches, player.Account.Puuid)

	response := &dto.HiddenGemsResponse{
		Summoner: player.DisplayName(),
		Gems:     gems,
	}

	if gs.bedrock == nil || len(gems) == 0 {
		return response, nil
	}

	prompt := buildGemsPrompt(player.DisplayName(), stats, gems)
	generation, err := gs.bedrock.Generate(ctx, bedrock.TaskHiddenGems, complexityFor(stats), prompt)
	if err != nil {
		// The heuristic discoveries stand on their own.
		return response, nil
	}

	response.Narrative = generation.Text
	response.ModelUsed = bedrock.ModelName(generation.Model)

	return response, nil
}

// buildGemsPrompt renders the detected patterns and headline stats into
// the analysis prompt.
func buildGemsPrompt(summoner string, stats *dto.PlayerStats, gems []dto.Discovery) string {
	var patterns strings.Builder
	for _, gem := range gems {
		fmt.Fprintf(&patterns, "- %s: %s\n", gem.Title, gem.Description)
	}

	return fmt.Sprintf(`You are a data scientist analyzing League of Legends gameplay patterns.

For %s, we discovered these patterns:
%s
Statistics:
- Win Rate: %.1f%%
- KDA: %.2f
- Games: %d

Write a short, surprising summary (2-3 sentences) of what these patterns reveal about this player. Be specific and actionable.`,
		summoner, patterns.String(), stats.WinRate, stats.AvgKDA, stats.TotalGames)
}

// complexityFor upgrades the model for large samples.
func complexityFor(stats *dto.PlayerStats) string {
	if stats.TotalGames >= 50 {
		return "high"
	}
	return "standard"
}
