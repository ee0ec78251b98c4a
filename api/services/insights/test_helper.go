package insightsservice

import (
	"context"
	"encoding/json"
	"riftrewind/api/services"
	"riftrewind/api/services/testutil"
	matchfetcher "riftrewind/fetcher/data/match"
	playerfetcher "riftrewind/fetcher/data/player"
	"riftrewind/pkg/bedrock"
	"riftrewind/pkg/regions"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/mock"
)

// stubClientProvider returns the same mocked client for every region.
type stubClientProvider struct {
	client services.RiotClient
}

func (p *stubClientProvider) Get(regions.SubRegion) services.RiotClient {
	return p.client
}

// stubRuntime answers every invocation with a fixed body or error.
type stubRuntime struct {
	body []byte
	err  error
}

func (s *stubRuntime) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: s.body}, nil
}

// novaBody builds a Nova shaped response payload.
func novaBody(text string) []byte {
	body, _ := json.Marshal(map[string]any{
		"output": map[string]any{
			"message": map[string]any{
				"content": []map[string]any{{"text": text}},
			},
		},
		"usage": map[string]any{"inputTokens": 100, "outputTokens": 50},
	})
	return body
}

func setupTestService(runtime bedrock.Runtime) (*InsightsService, *testutil.MockRiotClient, *bedrock.UsageTracker) {
	mockClient := new(testutil.MockRiotClient)
	tracker := bedrock.NewUsageTracker()

	var client *bedrock.Client
	if runtime != nil {
		client = bedrock.NewClient(&bedrock.ClientDeps{Runtime: runtime, Tracker: tracker})
	}

	service := NewInsightsService(&InsightsServiceDeps{
		Clients: &stubClientProvider{client: mockClient},
		Bedrock: client,
		Tracker: tracker,
	})

	return service, mockClient, tracker
}

func mockPlayerHistory(client *testutil.MockRiotClient) {
	account := &playerfetcher.Account{Puuid: "puuid-1", GameName: "Faker", TagLine: "KR1"}
	summoner := &playerfetcher.SummonerByPuuid{Puuid: "puuid-1", SummonerLevel: 512}

	client.On("GetAccountByRiotId", mock.Anything, "Faker", "KR1").Return(account, nil)
	client.On("GetSummonerByPuuid", mock.Anything, "puuid-1").Return(summoner, nil)
	client.On("GetMatchList", mock.Anything, "puuid-1", 1).Return([]string{"KR_1"}, nil)
	client.On("GetMatchData", mock.Anything, "KR_1").Return(testMatch("KR_1"), nil)
}

func testMatch(matchId string) *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: matchId},
		Info: matchfetcher.MatchInfo{
			GameCreation: matchfetcher.RiotTime(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)),
			GameDuration: 1500,
			QueueId:      420,
			Participants: []matchfetcher.MatchPlayer{
				{
					Puuid:        "puuid-1",
					ChampionId:   103,
					TeamPosition: "MIDDLE",
					TeamId:       100,
					Win:          true,
					Kills:        7,
					Deaths:       2,
					Assists:      9,
					GoldEarned:   12000,
				},
			},
		},
	}
}
