package services

import (
	"context"
	"riftrewind/fetcher/data"
	challengesfetcher "riftrewind/fetcher/data/challenges"
	clashfetcher "riftrewind/fetcher/data/clash"
	leaguefetcher "riftrewind/fetcher/data/league"
	matchfetcher "riftrewind/fetcher/data/match"
	masteryfetcher "riftrewind/fetcher/data/mastery"
	playerfetcher "riftrewind/fetcher/data/player"
	rotationfetcher "riftrewind/fetcher/data/rotation"
	"riftrewind/pkg/regions"
	"sync"
)

// RiotClient is the surface the services need from the fetcher layer.
// Kept as an interface so the services can be tested with mocks.
type RiotClient interface {
	GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error)
	GetSummonerByPuuid(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error)
	GetMatchList(ctx context.Context, puuid string, count int) ([]string, error)
	GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error)
	GetMatchTimelineData(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error)
	GetLeagueEntries(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error)
	GetPlayerChallenges(ctx context.Context, puuid string) (*challengesfetcher.PlayerChallenges, error)
	GetChallengeConfig(ctx context.Context) ([]challengesfetcher.ChallengeConfig, error)
	GetClashEntries(ctx context.Context, puuid string) ([]clashfetcher.ClashEntry, error)
	GetTopMasteries(ctx context.Context, puuid string, count int) ([]masteryfetcher.ChampionMastery, error)
	GetTotalMasteryScore(ctx context.Context, puuid string) (int64, error)
	GetRotation(ctx context.Context) (*rotationfetcher.ChampionRotation, error)
}

// ClientProvider hands out the riot client for a platform.
type ClientProvider interface {
	Get(subRegion regions.SubRegion) RiotClient
}

// ClientRegistry lazily creates one fetcher per platform and reuses it,
// so each platform keeps a single shared rate limiter.
type ClientRegistry struct {
	mu      sync.Mutex
	clients map[regions.SubRegion]RiotClient
}

// NewClientRegistry creates an empty registry.
func NewClientRegistry() *ClientRegistry {
	return &ClientRegistry{
		clients: make(map[regions.SubRegion]RiotClient),
	}
}

// Get returns the client for a platform, creating it on first use.
func (cr *ClientRegistry) Get(subRegion regions.SubRegion) RiotClient {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if client, exists := cr.clients[subRegion]; exists {
		return client
	}

	client := NewRiotClient(data.CreateMainFetcher(subRegion))
	cr.clients[subRegion] = client
	return client
}

// riotClient adapts the main fetcher to the service facing interface.
type riotClient struct {
	fetcher *data.MainFetcher
}

// NewRiotClient wraps a main fetcher for one platform.
func NewRiotClient(fetcher *data.MainFetcher) RiotClient {
	return &riotClient{fetcher: fetcher}
}

func (r *riotClient) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error) {
	return r.fetcher.Player.GetAccountByRiotId(ctx, gameName, tagLine)
}

func (r *riotClient) GetSummonerByPuuid(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error) {
	return r.fetcher.Player.GetSummonerByPuuid(ctx, puuid)
}

func (r *riotClient) GetMatchList(ctx context.Context, puuid string, count int) ([]string, error) {
	return r.fetcher.Match.GetMatchList(ctx, puuid, count)
}

func (r *riotClient) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	return r.fetcher.Match.GetMatchData(ctx, matchId)
}

func (r *riotClient) GetMatchTimelineData(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	return r.fetcher.Match.GetMatchTimelineData(ctx, matchId)
}

func (r *riotClient) GetLeagueEntries(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	return r.fetcher.League.GetLeagueEntries(ctx, puuid)
}

func (r *riotClient) GetPlayerChallenges(ctx context.Context, puuid string) (*challengesfetcher.PlayerChallenges, error) {
	return r.fetcher.Challenges.GetPlayerChallenges(ctx, puuid)
}

func (r *riotClient) GetChallengeConfig(ctx context.Context) ([]challengesfetcher.ChallengeConfig, error) {
	return r.fetcher.Challenges.GetChallengeConfig(ctx)
}

func (r *riotClient) GetClashEntries(ctx context.Context, puuid string) ([]clashfetcher.ClashEntry, error) {
	return r.fetcher.Clash.GetPlayerEntries(ctx, puuid)
}

func (r *riotClient) GetTopMasteries(ctx context.Context, puuid string, count int) ([]masteryfetcher.ChampionMastery, error) {
	return r.fetcher.Mastery.GetTopMasteries(ctx, puuid, count)
}

func (r *riotClient) GetTotalMasteryScore(ctx context.Context, puuid string) (int64, error) {
	return r.fetcher.Mastery.GetTotalScore(ctx, puuid)
}

func (r *riotClient) GetRotation(ctx context.Context) (*rotationfetcher.ChampionRotation, error) {
	return r.fetcher.Rotation.GetRotation(ctx)
}
