package challengesfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"riftrewind/fetcher/requests"
	"riftrewind/pkg/regions"
)

// The challenges fetcher with it's limiter and platform.
type ChallengesFetcher struct {
	limiter   *requests.RateLimiter
	subRegion regions.SubRegion
}

// Create a instance of the challenges fetcher.
func CreateChallengesFetcher(limiter *requests.RateLimiter, subRegion regions.SubRegion) *ChallengesFetcher {
	return &ChallengesFetcher{
		limiter:   limiter,
		subRegion: subRegion,
	}
}

// GetPlayerChallenges returns the full challenge data for a player.
func (c *ChallengesFetcher) GetPlayerChallenges(ctx context.Context, puuid string) (*PlayerChallenges, error) {
	c.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/challenges/v1/player-data/%s", c.subRegion, puuid)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var challenges PlayerChallenges
	if err := json.NewDecoder(resp.Body).Decode(&challenges); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &challenges, nil
}

// GetChallengeConfig returns the static challenge configuration list.
func (c *ChallengesFetcher) GetChallengeConfig(ctx context.Context) ([]ChallengeConfig, error) {
	c.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/challenges/v1/challenges/config", c.subRegion)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var config []ChallengeConfig
	if err := json.NewDecoder(resp.Body).Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return config, nil
}
