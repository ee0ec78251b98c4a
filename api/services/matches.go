package services

import (
	"context"
	"errors"
	"fmt"
	matchfetcher "riftrewind/fetcher/data/match"
	playerfetcher "riftrewind/fetcher/data/player"
	"sync"
)

var (
	// ErrPlayerNotFound marks a riot id that resolves to no account.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrNoMatches marks a player with an empty recent match list.
	ErrNoMatches = errors.New("no matches found for this player")
)

// ResolvedPlayer groups the account and summoner lookups for a riot id.
type ResolvedPlayer struct {
	Account  *playerfetcher.Account
	Summoner *playerfetcher.SummonerByPuuid
}

// DisplayName renders the account as the gameName#tagLine form.
func (rp *ResolvedPlayer) DisplayName() string {
	return fmt.Sprintf("%s#%s", rp.Account.GameName, rp.Account.TagLine)
}

// ResolvePlayer looks a riot id up and loads the summoner behind it.
func ResolvePlayer(ctx context.Context, client RiotClient, gameName string, tagLine string) (*ResolvedPlayer, error) {
	account, err := client.GetAccountByRiotId(ctx, gameName, tagLine)
	if err != nil {
		return nil, fmt.Errorf("%w: %s#%s", ErrPlayerNotFound, gameName, tagLine)
	}

	summoner, err := client.GetSummonerByPuuid(ctx, account.Puuid)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the summoner data: %w", err)
	}

	return &ResolvedPlayer{
		Account:  account,
		Summoner: summoner,
	}, nil
}

// FetchMatches loads the most recent matches of a player concurrently.
// Individual match failures are skipped, order of the id list is kept.
func FetchMatches(ctx context.Context, client RiotClient, puuid string, count int) ([]*matchfetcher.MatchData, error) {
	matchIds, err := client.GetMatchList(ctx, puuid, count)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the match list: %w", err)
	}
	if len(matchIds) == 0 {
		return nil, ErrNoMatches
	}

	fetched := make([]*matchfetcher.MatchData, len(matchIds))

	var wg sync.WaitGroup
	for i, matchId := range matchIds {
		i, matchId := i, matchId
		wg.Add(1)
		go func() {
			defer wg.Done()
			match, err := client.GetMatchData(ctx, matchId)
			if err != nil {
				// A single broken match must not sink the request.
				return
			}
			fetched[i] = match
		}()
	}
	wg.Wait()

	matches := make([]*matchfetcher.MatchData, 0, len(fetched))
	for _, match := range fetched {
		if match != nil {
			matches = append(matches, match)
		}
	}

	if len(matches) == 0 {
		return nil, ErrNoMatches
	}
	return matches, nil
}
