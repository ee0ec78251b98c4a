package clashfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"riftrewind/fetcher/requests"
	"riftrewind/pkg/regions"
)

// The clash fetcher with it's limiter and platform.
type ClashFetcher struct {
	limiter   *requests.RateLimiter
	subRegion regions.SubRegion
}

// ClashEntry is one tournament registration for a player.
type ClashEntry struct {
	SummonerId   string `json:"summonerId"`
	TeamId       string `json:"teamId"`
	Position     string `json:"position"`
	Role         string `json:"role"`
	TournamentId int    `json:"tournamentId"`
}

// Create a instance of the clash fetcher.
func CreateClashFetcher(limiter *requests.RateLimiter, subRegion regions.SubRegion) *ClashFetcher {
	return &ClashFetcher{
		limiter:   limiter,
		subRegion: subRegion,
	}
}

// GetPlayerEntries returns the clash registrations for a player.
func (c *ClashFetcher) GetPlayerEntries(ctx context.Context, puuid string) ([]ClashEntry, error) {
	c.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/clash/v1/players/by-puuid/%s", c.subRegion, puuid)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var entries []ClashEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return entries, nil
}
