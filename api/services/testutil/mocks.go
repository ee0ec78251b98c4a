// Package testutil holds the shared mocks for the service tests.
package testutil

import (
	"context"
	challengesfetcher "riftrewind/fetcher/data/challenges"
	clashfetcher "riftrewind/fetcher/data/clash"
	leaguefetcher "riftrewind/fetcher/data/league"
	masteryfetcher "riftrewind/fetcher/data/mastery"
	matchfetcher "riftrewind/fetcher/data/match"
	playerfetcher "riftrewind/fetcher/data/player"
	rotationfetcher "riftrewind/fetcher/data/rotation"

	"github.com/stretchr/testify/mock"
)

// MockRiotClient mocks the regional Riot client used by the services.
type MockRiotClient struct {
	mock.Mock
}

func (m *MockRiotClient) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

func (m *MockRiotClient) GetSummonerByPuuid(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.SummonerByPuuid), args.Error(1)
}

func (m *MockRiotClient) GetMatchList(ctx context.Context, puuid string, count int) ([]string, error) {
	args := m.Called(ctx, puuid, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRiotClient) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

func (m *MockRiotClient) GetMatchTimelineData(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchTimeline), args.Error(1)
}

func (m *MockRiotClient) GetLeagueEntries(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

func (m *MockRiotClient) GetPlayerChallenges(ctx context.Context, puuid string) (*challengesfetcher.PlayerChallenges, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*challengesfetcher.PlayerChallenges), args.Error(1)
}

func (m *MockRiotClient) GetChallengeConfig(ctx context.Context) ([]challengesfetcher.ChallengeConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]challengesfetcher.ChallengeConfig), args.Error(1)
}

func (m *MockRiotClient) GetClashEntries(ctx context.Context, puuid string) ([]clashfetcher.ClashEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clashfetcher.ClashEntry), args.Error(1)
}

func (m *MockRiotClient) GetTopMasteries(ctx context.Context, puuid string, count int) ([]masteryfetcher.ChampionMastery, error) {
	args := m.Called(ctx, puuid, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]masteryfetcher.ChampionMastery), args.Error(1)
}

func (m *MockRiotClient) GetTotalMasteryScore(ctx context.Context, puuid string) (int64, error) {
	args := m.Called(ctx, puuid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRiotClient) GetRotation(ctx context.Context) (*rotationfetcher.ChampionRotation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rotationfetcher.ChampionRotation), args.Error(1)
}
