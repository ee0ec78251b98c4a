package gemsservice

import (
	"context"
	"encoding/json"
	"riftrewind/api/services"
	"riftrewind/api/services/testutil"
	matchfetcher "riftrewind/fetcher/data/match"
	playerfetcher "riftrewind/fetcher/data/player"
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

// anthropicBody builds a Claude shaped response payload.
func anthropicBody(text string) []byte {
	body, _ := json.Marshal(map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
		"usage":   map[string]any{"input_tokens": 100, "output_tokens": 50},
	})
	return body
}

func setupTestService() (*GemsService, *testutil.MockRiotClient) {
	mockClient := new(testutil.MockRiotClient)

	service := NewGemsService(&GemsServiceDeps{
		Clients: &stubClientProvider{client: mockClient},
	})

	return service, mockClient
}

func testAccount() *playerfetcher.Account {
	return &playerfetcher.Account{Puuid: "puuid-1", GameName: "Faker", TagLine: "KR1"}
}

func testSummoner() *playerfetcher.SummonerByPuuid {
	return &playerfetcher.SummonerByPuuid{Puuid: "puuid-1", SummonerLevel: 512}
}

// testMatch creates a minimal evening win or loss for the subject.
func testMatch(matchId string, won bool) *matchfetcher.MatchData {
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
					Win:          won,
					Kills:        7,
					Deaths:       2,
					Assists:      9,
					GoldEarned:   12000,
				},
			},
		},
	}
}

// mockMatchHistory wires a five game winning history into the client.
func mockMatchHistory(client *testutil.MockRiotClient) {
	matchIds := []string{"KR_1", "KR_2", "KR_3", "KR_4", "KR_5"}

	client.On("GetMatchList", mock.Anything, "puuid-1", 5).Return(matchIds, nil)
	for _, matchId := range matchIds {
		client.On("GetMatchData", mock.Anything, matchId).Return(testMatch(matchId, true), nil)
	}
}
