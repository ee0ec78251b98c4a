package gemsservice

import (
	"context"
	"errors"
	"testing"

	"riftrewind/api/dto"
	"riftrewind/api/services"
	"riftrewind/pkg/bedrock"
	"riftrewind/pkg/regions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testRegion = regions.SubRegion("KR")

func TestNewGemsService(t *testing.T) {
	service, _ := setupTestService()

	assert.NotNil(t, service)
	assert.Nil(t, service.bedrock)
}

func TestDiscoverGemsWithoutBedrock(t *testing.T) {
	service, client := setupTestService()

	client.On("GetAccountByRiotId", mock.Anything, "Faker", "KR1").Return(testAccount(), nil)
	client.On("GetSummonerByPuuid", mock.Anything, "puuid-1").Return(testSummoner(), nil)
	mockMatchHistory(client)

	response, err := service.DiscoverGems(context.Background(), testRegion, "Faker", "KR1", 5)

	assert.NoError(t, err)
	assert.Equal(t, "Faker#KR1", response.Summoner)
	// A five game win streak surfaces at least one discovery.
	assert.NotEmpty(t, response.Gems)
	assert.Empty(t, response.Narrative)
	assert.Empty(t, response.ModelUsed)
}

func TestDiscoverGemsWithNarrative(t *testing.T) {
	service, client := setupTestService()
	service.bedrock = bedrock.NewClient(&bedrock.ClientDeps{
		Runtime: &stubRuntime{body: anthropicBody("You thrive in the evening.")},
		Tracker: bedrock.NewUsageTracker(),
	})

	client.On("GetAccountByRiotId", mock.Anything, "Faker", "KR1").Return(testAccount(), nil)
	client.On("GetSummonerByPuuid", mock.Anything, "puuid-1").Return(testSummoner(), nil)
	mockMatchHistory(client)

	response, err := service.DiscoverGems(context.Background(), testRegion, "Faker", "KR1", 5)

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Gems)
	assert.Equal(t, "You thrive in the evening.", response.Narrative)
	assert.Equal(t, "Claude Haiku", response.ModelUsed)
}

func TestDiscoverGemsModelFailureKeepsHeuristics(t *testing.T) {
	service, client := setupTestService()
	service.bedrock = bedrock.NewClient(&bedrock.ClientDeps{
		Runtime: &stubRuntime{err: errors.New("throttled")},
		Tracker: bedrock.NewUsageTracker(),
	})

	client.On("GetAccountByRiotId", mock.Anything, "Faker", "KR1").Return(testAccount(), nil)
	client.On("GetSummonerByPuuid", mock.Anything, "puuid-1").Return(testSummoner(), nil)
	mockMatchHistory(client)

	response, err := service.DiscoverGems(context.Background(), testRegion, "Faker", "KR1", 5)

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Gems)
	assert.Empty(t, response.Narrative)
}

func TestDiscoverGemsPlayerNotFound(t *testing.T) {
	service, client := setupTestService()

	client.On("GetAccountByRiotId", mock.Anything, "Ghost", "NA1").Return(nil, errors.New("status 404"))

	response, err := service.DiscoverGems(context.Background(), testRegion, "Ghost", "NA1", 5)

	assert.Nil(t, response)
	assert.ErrorIs(t, err, services.ErrPlayerNotFound)
}

func TestComplexityFor(t *testing.T) {
	assert.Equal(t, "standard", complexityFor(&dto.PlayerStats{TotalGames: 20}))
	assert.Equal(t, "high", complexityFor(&dto.PlayerStats{TotalGames: 50}))
}
