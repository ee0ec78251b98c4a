package rotationfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"riftrewind/fetcher/requests"
	"riftrewind/pkg/regions"
)

// The rotation fetcher with it's limiter and platform.
type RotationFetcher struct {
	limiter   *requests.RateLimiter
	subRegion regions.SubRegion
}

// ChampionRotation is the current free rotation.
type ChampionRotation struct {
	FreeChampionIds              []int `json:"freeChampionIds"`
	FreeChampionIdsForNewPlayers []int `json:"freeChampionIdsForNewPlayers"`
	MaxNewPlayerLevel            int   `json:"maxNewPlayerLevel"`
}

// Create a instance of the rotation fetcher.
func CreateRotationFetcher(limiter *requests.RateLimiter, subRegion regions.SubRegion) *RotationFetcher {
	return &RotationFetcher{
		limiter:   limiter,
		subRegion: subRegion,
	}
}

// GetRotation returns the current free champion rotation.
func (r *RotationFetcher) GetRotation(ctx context.Context) (*ChampionRotation, error) {
	r.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/platform/v3/champion-rotations", r.subRegion)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var rotation ChampionRotation
	if err := json.NewDecoder(resp.Body).Decode(&rotation); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &rotation, nil
}
