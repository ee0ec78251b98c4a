package insightsservice

import (
	"context"
	"errors"
	"fmt"
	"riftrewind/api/analytics"
	"riftrewind/api/dto"
	"riftrewind/api/services"
	"riftrewind/pkg/bedrock"
	"riftrewind/pkg/regions"
	"strings"
)

// ErrNarrativeUnavailable marks requests made without a configured model
// backend.
var ErrNarrativeUnavailable = errors.New("narrative generation is not configured")

// InsightsService runs the narrative flows, the year recap, the roast and
// the personality profile.
type InsightsService struct {
	clients services.ClientProvider
	bedrock *bedrock.Client
	tracker *bedrock.UsageTracker
}

// InsightsServiceDeps holds the external dependencies of the service.
type InsightsServiceDeps struct {
	Clients services.ClientProvider
	Bedrock *bedrock.Client
	Tracker *bedrock.UsageTracker
}

// NewInsightsService creates the insights service.
func NewInsightsService(deps *InsightsServiceDeps) *InsightsService {
	return &InsightsService{
		clients: deps.Clients,
		bedrock: deps.Bedrock,
		tracker: deps.Tracker,
	}
}

// GenerateRecap builds the year recap narrative for a player.
func (is *InsightsService) GenerateRecap(ctx context.Context, region regions.SubRegion, gameName string, tagLine string, matchCount int) (*dto.NarrativeResponse, error) {
	return is.generate(ctx, region, gameName, tagLine, matchCount, bedrock.TaskRecap, buildRecapPrompt)
}

// GenerateRoast builds the roast narrative for a player.
func (is *InsightsService) GenerateRoast(ctx context.Context, region regions.SubRegion, gameName string, tagLine string, matchCount int) (*dto.NarrativeResponse, error) {
	return is.generate(ctx, region, gameName, tagLine, matchCount, bedrock.TaskRoast, buildRoastPrompt)
}

// GeneratePersonality builds the personality profile for a player.
func (is *InsightsService) GeneratePersonality(ctx context.Context, region regions.SubRegion, gameName string, tagLine string, matchCount int) (*dto.NarrativeResponse, error) {
	return is.generate(ctx, region, gameName, tagLine, matchCount, bedrock.TaskPersonality, buildPersonalityPrompt)
}

// UsageReport exports the accumulated model usage totals.
func (is *InsightsService) UsageReport() bedrock.UsageReport {
	return is.tracker.Report()
}

// generate is the shared narrative flow, stats in, one generation out.
func (is *InsightsService) generate(
	ctx context.Context,
	region regions.SubRegion,
	gameName string,
	tagLine string,
	matchCount int,
	task bedrock.TaskType,
	buildPrompt func(summoner string, stats *dto.PlayerStats) string,
) (*dto.NarrativeResponse, error) {
	if is.bedrock == nil {
		return nil, ErrNarrativeUnavailable
	}

	client := is.clients.Get(region)

	player, err := services.ResolvePlayer(ctx, client, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	matches, err := services.FetchMatches(ctx, client, player.Account.Puuid, matchCount)
	if err != nil {
		return nil, err
	}

	stats := analytics.AggregateMatches(matches, player.Account.Puuid)

	complexity := "standard"
	if stats.TotalGames >= 50 {
		complexity = "high"
	}

	generation, err := is.bedrock.Generate(ctx, task, complexity, buildPrompt(player.DisplayName(), stats))
	if err != nil {
		return nil, fmt.Errorf("narrative generation failed: %w", err)
	}

	return &dto.NarrativeResponse{
		Summoner:  player.DisplayName(),
		Text:      generation.Text,
		ModelUsed: bedrock.ModelName(generation.Model),
	}, nil
}

func topChampionNames(stats *dto.PlayerStats, count int) string {
	names := make([]string, 0, count)
	for i, champ := range stats.TopChampions {
		if i == count {
			break
		}
		names = append(names, champ.ChampionName)
	}
	return strings.Join(names, ", ")
}

func buildRecapPrompt(summoner string, stats *dto.PlayerStats) string {
	return fmt.Sprintf(`You are an expert League of Legends coach creating a personalized year-end recap for %s.

Based on the following statistics, create an engaging, insightful, and encouraging recap:

STATISTICS:
- Total Games: %d
- Win Rate: %.1f%%
- Average KDA: %.2f
- Top Champions: %s
- Most Played Role: %s
- Recent Trend: %s

Write a 2-3 paragraph story about their League journey this year, then list 3 strengths and 2 areas to improve. Make it personal, specific to their stats, encouraging, and fun.`,
		summoner, stats.TotalGames, stats.WinRate, stats.AvgKDA,
		topChampionNames(stats, 3), stats.MostPlayedRole, stats.RecentTrend)
}

func buildRoastPrompt(summoner string, stats *dto.PlayerStats) string {
	return fmt.Sprintf(`You are a savage League of Legends coach who roasts players (but keeps it fun).

Generate a hilarious roast for %s based on these stats:
- Average Deaths: %.1f per game
- Win Rate: %.1f%%
- KDA: %.2f
- Recent Trend: %s

Rules:
1. Be funny and creative, but not mean-spirited
2. Use gaming memes and League terminology
3. 3-5 short, punchy roasts
4. Include emojis
5. Make it shareable and entertaining`,
		summoner, stats.AvgDeaths, stats.WinRate, stats.AvgKDA, stats.RecentTrend)
}

func buildPersonalityPrompt(summoner string, stats *dto.PlayerStats) string {
	return fmt.Sprintf(`You are a League of Legends psychologist who creates fun personality profiles.

Analyze %s's personality based on their stats:
- Win Rate: %.1f%%
- KDA: %.2f
- Avg Kills: %.1f
- Avg Deaths: %.1f
- Avg Assists: %.1f
- Most Played Role: %s
- Top Champions: %s

Create a short personality profile: an archetype name, a one sentence playstyle description, and 2-3 sentences about their in-game personality. Make it fun and accurate to their stats.`,
		summoner, stats.WinRate, stats.AvgKDA, stats.AvgKills, stats.AvgDeaths,
		stats.AvgAssists, stats.MostPlayedRole, topChampionNames(stats, 3))
}
