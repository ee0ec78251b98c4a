package playerservice

import (
	"riftrewind/api/cache"
	"riftrewind/api/services"
	"riftrewind/api/services/testutil"
	matchfetcher "riftrewind/fetcher/data/match"
	playerfetcher "riftrewind/fetcher/data/player"
	"riftrewind/pkg/regions"
	"time"
)

// stubClientProvider returns the same mocked client for every region.
type stubClientProvider struct {
	client services.RiotClient
}

func (p *stubClientProvider) Get(regions.SubRegion) services.RiotClient {
	return p.client
}

// Helper to initialize the mocks.
func setupTestService() (*PlayerService, *testutil.MockRiotClient) {
	mockClient := new(testutil.MockRiotClient)

	service := &PlayerService{
		clients:  &stubClientProvider{client: mockClient},
		memCache: cache.NewMemCache(),
	}

	return service, mockClient
}

func testAccount() *playerfetcher.Account {
	return &playerfetcher.Account{Puuid: "puuid-1", GameName: "Faker", TagLine: "KR1"}
}

func testSummoner() *playerfetcher.SummonerByPuuid {
	return &playerfetcher.SummonerByPuuid{
		Puuid:         "puuid-1",
		ProfileIconId: 29,
		SummonerLevel: 512,
	}
}

// testMatch creates a minimal match with the subject on participant 1.
func testMatch(matchId string, won bool) *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: matchId},
		Info: matchfetcher.MatchInfo{
			GameCreation: matchfetcher.RiotTime(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)),
			GameDuration: 1500,
			QueueId:      420,
			Participants: []matchfetcher.MatchPlayer{
				{
					Puuid:         "puuid-1",
					ParticipantId: 1,
					ChampionId:    103,
					TeamPosition:  "MIDDLE",
					TeamId:        100,
					Win:           won,
					Kills:         7,
					Deaths:        2,
					Assists:       9,
					GoldEarned:    12000,
				},
				{
					Puuid:         "enemy-puuid",
					ParticipantId: 6,
					ChampionId:    238,
					TeamPosition:  "MIDDLE",
					TeamId:        200,
					Win:           !won,
					Kills:         4,
					Deaths:        7,
					Assists:       3,
					GoldEarned:    10000,
				},
			},
		},
	}
}
