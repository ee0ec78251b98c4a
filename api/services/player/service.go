package playerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"riftrewind/api/analytics"
	"riftrewind/api/cache"
	"riftrewind/api/dto"
	"riftrewind/api/services"
	challengesfetcher "riftrewind/fetcher/data/challenges"
	clashfetcher "riftrewind/fetcher/data/clash"
	leaguefetcher "riftrewind/fetcher/data/league"
	matchfetcher "riftrewind/fetcher/data/match"
	masteryfetcher "riftrewind/fetcher/data/mastery"
	rotationfetcher "riftrewind/fetcher/data/rotation"
	"riftrewind/pkg/logger"
	"riftrewind/pkg/redis"
	"riftrewind/pkg/regions"
	"strings"
	"sync"
	"time"
)

const (
	memCacheTTL   = 2 * time.Minute
	redisCacheTTL = 10 * time.Minute

	rotationCacheKey        = "reference:rotation"
	challengeConfigCacheKey = "reference:challenge-config"
	referenceTTL            = 6 * time.Hour

	topMasteryCount = 10
)

// PlayerService composes the full player statistics response.
type PlayerService struct {
	clients   services.ClientProvider
	logger    *logger.Logger
	memCache  *cache.MemCache
	redis     *redis.RedisClient
	reference *cache.ReferenceCache
}

// PlayerServiceDeps holds the external dependencies of the service.
// Redis and the reference cache may be nil, caching then degrades to
// memory only.
type PlayerServiceDeps struct {
	Clients   services.ClientProvider
	Logger    *logger.Logger
	MemCache  *cache.MemCache
	Redis     *redis.RedisClient
	Reference *cache.ReferenceCache
}

// NewPlayerService creates the player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		clients:   deps.Clients,
		logger:    deps.Logger,
		memCache:  deps.MemCache,
		redis:     deps.Redis,
		reference: deps.Reference,
	}
}

func (ps *PlayerService) logErrorf(format string, args ...any) {
	if ps.logger != nil {
		ps.logger.Errorf(format, args...)
	}
}

// rawAnalytics groups every optional fetch branch result.
// Any field may hold it's zero value when the branch failed.
type rawAnalytics struct {
	leagueEntries   []leaguefetcher.LeagueEntry
	challenges      *challengesfetcher.PlayerChallenges
	challengeConfig []challengesfetcher.ChallengeConfig
	timeline        *matchfetcher.MatchTimeline
	clashEntries    []clashfetcher.ClashEntry
	totalMastery    int64
	topMasteries    []masteryfetcher.ChampionMastery
	rotation        *rotationfetcher.ChampionRotation
}

// GetPlayerStats builds the statistics response for a riot id.
// The composed response is cached in memory and on Redis.
func (ps *PlayerService) GetPlayerStats(ctx context.Context, region regions.SubRegion, gameName string, tagLine string, matchCount int) (*dto.PlayerStatsResponse, error) {
	cacheKey := ps.statsCacheKey(region, gameName, tagLine, matchCount)

	if cached := ps.getCachedResponse(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	client := ps.clients.Get(region)

	player, err := services.ResolvePlayer(ctx, client, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	matches, err := services.FetchMatches(ctx, client, player.Account.Puuid, matchCount)
	if err != nil {
		return nil, err
	}

	stats := analytics.AggregateMatches(matches, player.Account.Puuid)
	raw := ps.fetchAnalyticsBranches(ctx, client, player.Account.Puuid, matches)

	response := &dto.PlayerStatsResponse{
		Summoner: dto.SummonerInfo{
			Name:          player.DisplayName(),
			Level:         player.Summoner.SummonerLevel,
			ProfileIconId: player.Summoner.ProfileIconId,
			Puuid:         player.Account.Puuid,
		},
		Stats:             stats,
		MatchCount:        len(matches),
		EnhancedAnalytics: ps.runAnalyzers(raw, matches, player.Account.Puuid),
	}

	ps.setCachedResponse(ctx, cacheKey, response)

	return response, nil
}

// fetchAnalyticsBranches runs every optional fetch concurrently.
// Each branch failure leaves it's zero value, never aborts the others.
func (ps *PlayerService) fetchAnalyticsBranches(ctx context.Context, client services.RiotClient, puuid string, matches []*matchfetcher.MatchData) *rawAnalytics {
	raw := &rawAnalytics{}

	var wg sync.WaitGroup
	run := func(fetch func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetch()
		}()
	}

	run(func() {
		if entries, err := client.GetLeagueEntries(ctx, puuid); err == nil {
			raw.leagueEntries = entries
		} else {
			ps.logErrorf("Couldn't get the league entries for %s: %v", puuid, err)
		}
	})
	run(func() {
		if challenges, err := client.GetPlayerChallenges(ctx, puuid); err == nil {
			raw.challenges = challenges
		} else {
			ps.logErrorf("Couldn't get the challenges for %s: %v", puuid, err)
		}
	})
	run(func() {
		raw.challengeConfig = ps.loadChallengeConfig(ctx, client)
	})
	run(func() {
		matchId := matches[0].Metadata.MatchId
		if timeline, err := client.GetMatchTimelineData(ctx, matchId); err == nil {
			raw.timeline = timeline
		} else {
			ps.logErrorf("Couldn't get the timeline for %s: %v", matchId, err)
		}
	})
	run(func() {
		if entries, err := client.GetClashEntries(ctx, puuid); err == nil {
			raw.clashEntries = entries
		} else {
			ps.logErrorf("Couldn't get the clash entries for %s: %v", puuid, err)
		}
	})
	run(func() {
		if score, err := client.GetTotalMasteryScore(ctx, puuid); err == nil {
			raw.totalMastery = score
		} else {
			ps.logErrorf("Couldn't get the mastery score for %s: %v", puuid, err)
		}
	})
	run(func() {
		if masteries, err := client.GetTopMasteries(ctx, puuid, topMasteryCount); err == nil {
			raw.topMasteries = masteries
		} else {
			ps.logErrorf("Couldn't get the top masteries for %s: %v", puuid, err)
		}
	})
	run(func() {
		raw.rotation = ps.loadRotation(ctx, client)
	})

	wg.Wait()
	return raw
}

// runAnalyzers feeds the raw branches into the pure analyzers.
func (ps *PlayerService) runAnalyzers(raw *rawAnalytics, matches []*matchfetcher.MatchData, puuid string) dto.EnhancedAnalytics {
	timelineInsight := &dto.TimelineInsight{Available: false}
	if raw.timeline != nil && len(matches) > 0 {
		for _, participant := range matches[0].Info.Participants {
			if participant.Puuid == puuid {
				timelineInsight = analytics.AnalyzeTimeline(raw.timeline, participant.ParticipantId, participant.Win)
				break
			}
		}
	}

	var recentChampions []int
	for _, match := range matches {
		for _, participant := range match.Info.Participants {
			if participant.Puuid == puuid {
				recentChampions = append(recentChampions, participant.ChampionId)
				break
			}
		}
	}

	return dto.EnhancedAnalytics{
		Ranked:             analytics.AnalyzeRank(raw.leagueEntries),
		Challenges:         analytics.AnalyzeChallenges(raw.challenges),
		ChallengesEnriched: analytics.EnrichChallenges(raw.challenges, raw.challengeConfig),
		RecentTimeline:     timelineInsight,
		Clash:              analytics.AnalyzeClash(raw.clashEntries),
		Mastery:            analytics.AnalyzeMastery(raw.totalMastery, raw.topMasteries),
		FreeRotation:       analytics.AnalyzeRotationUsage(raw.rotation, recentChampions),
	}
}

// loadRotation fetches the free rotation, keeping the reference cache warm
// and falling back to it when the platform endpoint fails.
func (ps *PlayerService) loadRotation(ctx context.Context, client services.RiotClient) *rotationfetcher.ChampionRotation {
	rotation, err := client.GetRotation(ctx)
	if err == nil {
		if ps.reference != nil {
			if payload, marshalErr := json.Marshal(rotation); marshalErr == nil {
				ps.reference.Set(ctx, rotationCacheKey, string(payload), referenceTTL)
			}
		}
		return rotation
	}

	ps.logErrorf("Couldn't get the rotation, falling back to the reference cache: %v", err)

	if ps.reference == nil {
		return nil
	}

	payload, err := ps.reference.Get(ctx, rotationCacheKey)
	if err != nil {
		return nil
	}

	var cached rotationfetcher.ChampionRotation
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil
	}
	return &cached
}

// loadChallengeConfig mirrors loadRotation for the challenge config list.
func (ps *PlayerService) loadChallengeConfig(ctx context.Context, client services.RiotClient) []challengesfetcher.ChallengeConfig {
	config, err := client.GetChallengeConfig(ctx)
	if err == nil {
		if ps.reference != nil {
			if payload, marshalErr := json.Marshal(config); marshalErr == nil {
				ps.reference.Set(ctx, challengeConfigCacheKey, string(payload), referenceTTL)
			}
		}
		return config
	}

	ps.logErrorf("Couldn't get the challenge config, falling back to the reference cache: %v", err)

	if ps.reference == nil {
		return nil
	}

	payload, err := ps.reference.Get(ctx, challengeConfigCacheKey)
	if err != nil {
		return nil
	}

	var cached []challengesfetcher.ChallengeConfig
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil
	}
	return cached
}

func (ps *PlayerService) statsCacheKey(region regions.SubRegion, gameName string, tagLine string, matchCount int) string {
	return fmt.Sprintf("player:stats:%s:%s:%s:%d",
		region,
		strings.ToLower(gameName),
		strings.ToLower(tagLine),
		matchCount,
	)
}

// getCachedResponse checks the memory cache, then Redis.
func (ps *PlayerService) getCachedResponse(ctx context.Context, cacheKey string) *dto.PlayerStatsResponse {
	if cached := ps.memCache.Get(cacheKey); cached != nil {
		if response, ok := cached.(*dto.PlayerStatsResponse); ok {
			return response
		}
	}

	if ps.redis == nil {
		return nil
	}

	payload, err := ps.redis.Get(ctx, cacheKey)
	if err != nil {
		return nil
	}

	var response dto.PlayerStatsResponse
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		return nil
	}

	// Repopulate the faster layer.
	ps.memCache.Set(cacheKey, &response, memCacheTTL)
	return &response
}

// setCachedResponse writes the composed response through both layers.
func (ps *PlayerService) setCachedResponse(ctx context.Context, cacheKey string, response *dto.PlayerStatsResponse) {
	ps.memCache.Set(cacheKey, response, memCacheTTL)

	if ps.redis == nil {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	// Best effort, a Redis outage only loses cross instance caching.
	_ = ps.redis.Set(ctx, cacheKey, string(payload), redisCacheTTL)
}
