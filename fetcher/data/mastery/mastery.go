package masteryfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"riftrewind/fetcher/requests"
	"riftrewind/pkg/regions"
	"strconv"
)

// The mastery fetcher with it's limiter and platform.
type MasteryFetcher struct {
	limiter   *requests.RateLimiter
	subRegion regions.SubRegion
}

// ChampionMastery is one champion mastery entry.
type ChampionMastery struct {
	ChampionId     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int64 `json:"championPoints"`
}

// Create a instance of the mastery fetcher.
func CreateMasteryFetcher(limiter *requests.RateLimiter, subRegion regions.SubRegion) *MasteryFetcher {
	return &MasteryFetcher{
		limiter:   limiter,
		subRegion: subRegion,
	}
}

// GetTopMasteries returns the top N mastery entries for a player.
func (m *MasteryFetcher) GetTopMasteries(ctx context.Context, puuid string, count int) ([]ChampionMastery, error) {
	m.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top", m.subRegion, puuid)

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

	var masteries []ChampionMastery
	if err := json.NewDecoder(resp.Body).Decode(&masteries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return masteries, nil
}

// GetTotalScore returns the summed mastery levels for a player.
func (m *MasteryFetcher) GetTotalScore(ctx context.Context, puuid string) (int64, error) {
	m.limiter.Wait()

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/champion-mastery/v4/scores/by-puuid/%s", m.subRegion, puuid)

	resp, err := requests.AuthRequest(ctx, url, "GET", map[string]string{})
	if err != nil {
		return 0, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var score int64
	if err := json.NewDecoder(resp.Body).Decode(&score); err != nil {
		return 0, fmt.Errorf("failed to parse API response: %w", err)
	}

	return score, nil
}
