package data

import (
	challengesfetcher "riftrewind/fetcher/data/challenges"
	clashfetcher "riftrewind/fetcher/data/clash"
	leaguefetcher "riftrewind/fetcher/data/league"
	matchfetcher "riftrewind/fetcher/data/match"
	masteryfetcher "riftrewind/fetcher/data/mastery"
	playerfetcher "riftrewind/fetcher/data/player"
	rotationfetcher "riftrewind/fetcher/data/rotation"
	"riftrewind/fetcher/requests"
	"riftrewind/pkg/regions"
)

// Define a main fetcher grouping every endpoint family for one platform.
type MainFetcher struct {
	Player     *playerfetcher.PlayerFetcher
	Match      *matchfetcher.MatchFetcher
	League     *leaguefetcher.LeagueFetcher
	Challenges *challengesfetcher.ChallengesFetcher
	Clash      *clashfetcher.ClashFetcher
	Mastery    *masteryfetcher.MasteryFetcher
	Rotation   *rotationfetcher.RotationFetcher
}

// Function to instanciate the main fetcher.
// All endpoint families share one rate limiter, since the key limit is global.
func CreateMainFetcher(subRegion regions.SubRegion) *MainFetcher {
	limiter := requests.CreateRateLimiter()

	return &MainFetcher{
		Player:     playerfetcher.CreatePlayerFetcher(limiter, subRegion),
		Match:      matchfetcher.CreateMatchFetcher(limiter, regions.MainForSub(subRegion)),
		League:     leaguefetcher.CreateLeagueFetcher(limiter, subRegion),
		Challenges: challengesfetcher.CreateChallengesFetcher(limiter, subRegion),
		Clash:      clashfetcher.CreateClashFetcher(limiter, subRegion),
		Mastery:    masteryfetcher.CreateMasteryFetcher(limiter, subRegion),
		Rotation:   rotationfetcher.CreateRotationFetcher(limiter, subRegion),
	}
}
