package leaguefetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"riftrewind/fetcher/requests"
	"riftrewind/pkg/regions"
)

// The league fetcher with it's limiter and platform.
type LeagueFetcher struct {
	limiter   *requests.RateLimiter
	subRegion regions.SubRegion
}

// Create a instance of the league fetcher.
func CreateLeagueFetcher(limiter *requests.RateLimiter, subRegion regions.SubRegion) *LeagueFetcher {
	return &LeagueFetcher{
		limiter:   limiter,
		subRegion: subRegion,
	}
}

// GetLeagueEntries returns every ranked queue entry for a player.
func (l *LeagueFetcher) GetLeagueEntries(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	l.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s", l.subRegion, puuid)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return entries, nil
}
