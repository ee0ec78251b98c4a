package playerfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"riftrewind/fetcher/requests"
	"riftrewind/pkg/regions"
)

// The player fetcher with it's limiter and regions.
type PlayerFetcher struct {
	limiter   *requests.RateLimiter
	main      regions.MainRegion
	subRegion regions.SubRegion
}

// Create a instance of the player fetcher.
func CreatePlayerFetcher(limiter *requests.RateLimiter, subRegion regions.SubRegion) *PlayerFetcher {
	return &PlayerFetcher{
		limiter:   limiter,
		main:      regions.MainForSub(subRegion),
		subRegion: subRegion,
	}
}

// GetAccountByRiotId resolves a game name and tagline into a account.
func (p *PlayerFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*Account, error) {
	p.limiter.Wait()

	requestUrl := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		p.main, url.PathEscape(gameName), url.PathEscape(tagLine))

	resp, err := requests.AuthRequest(ctx, requestUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &account, nil
}

// GetSummonerByPuuid returns the platform data for a player.
func (p *PlayerFetcher) GetSummonerByPuuid(ctx context.Context, puuid string) (*SummonerByPuuid, error) {
	p.limiter.Wait()

	requestUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", p.subRegion, puuid)

	resp, err := requests.AuthRequest(ctx, requestUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var summoner SummonerByPuuid
	if err := json.NewDecoder(resp.Body).Decode(&summoner); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &summoner, nil
}
