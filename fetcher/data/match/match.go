package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"riftrewind/fetcher/requests"
	"riftrewind/pkg/regions"
	"strconv"
	"time"
)

// The match fetcher with it's limiter and routing region.
type MatchFetcher struct {
	limiter *requests.RateLimiter
	region  regions.MainRegion
}

// Create a instance of the match fetcher.
func CreateMatchFetcher(limiter *requests.RateLimiter, region regions.MainRegion) *MatchFetcher {
	return &MatchFetcher{
		limiter: limiter,
		region:  region,
	}
}

// Handle the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// GetMatchList returns the most recent match ids for a player.
func (m *MatchFetcher) GetMatchList(ctx context.Context, puuid string, count int) ([]string, error) {
	m.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids", m.region, puuid)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{
		"count": strconv.Itoa(count),
	})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var matchIds []string
	if err := json.NewDecoder(resp.Body).Decode(&matchIds); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return matchIds, nil
}

// Get a given match data.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string) (*MatchData, error) {
	m.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", m.region, matchId)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &matchData, nil
}

// Get a given match timeline.
func (m *MatchFetcher) GetMatchTimelineData(ctx context.Context, matchId string) (*MatchTimeline, error) {
	m.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s/timeline", m.region, matchId)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var timeline MatchTimeline
	if err := json.NewDecoder(resp.Body).Decode(&timeline); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &timeline, nil
}
