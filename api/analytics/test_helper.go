package analytics

import (
	matchfetcher "riftrewind/fetcher/data/match"
	"time"
)

const testPuuid = "test-puuid"

// matchOptions drives the test match builder. Zero values map to a
// plain 25 minute mid lane game.
type matchOptions struct {
	win        bool
	championId int
	position   string
	kills      int
	deaths     int
	assists    int
	gold       int
	duration   int
	created    time.Time
}

// buildMatch creates a two team match with the subject on team 100.
func buildMatch(opts matchOptions) *matchfetcher.MatchData {
	if opts.championId == 0 {
		opts.championId = 103
	}
	if opts.position == "" {
		opts.position = "MIDDLE"
	}
	if opts.duration == 0 {
		opts.duration = 1500
	}
	if opts.gold == 0 {
		opts.gold = 10000
	}
	if opts.created.IsZero() {
		opts.created = time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	}

	subject := matchfetcher.MatchPlayer{
		Puuid:                       testPuuid,
		ChampionId:                  opts.championId,
		TeamPosition:                opts.position,
		TeamId:                      100,
		Win:                         opts.win,
		Kills:                       opts.kills,
		Deaths:                      opts.deaths,
		Assists:                     opts.assists,
		GoldEarned:                  opts.gold,
		TotalMinionsKilled:          150,
		NeutralMinionsKilled:        20,
		TotalDamageDealtToChampions: 20000,
		TotalDamageTaken:            18000,
		VisionScore:                 25,
	}

	teammate := matchfetcher.MatchPlayer{
		Puuid:                       "teammate-puuid",
		ChampionId:                  64,
		TeamPosition:                "JUNGLE",
		TeamId:                      100,
		Win:                         opts.win,
		Kills:                       5,
		Deaths:                      3,
		Assists:                     7,
		GoldEarned:                  9000,
		TotalDamageDealtToChampions: 15000,
	}

	enemy := matchfetcher.MatchPlayer{
		Puuid:                       "enemy-puuid",
		ChampionId:                  238,
		TeamPosition:                "MIDDLE",
		TeamId:                      200,
		Win:                         !opts.win,
		Kills:                       8,
		Deaths:                      4,
		Assists:                     2,
		GoldEarned:                  11000,
		TotalDamageDealtToChampions: 22000,
	}

	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: "BR1_Test"},
		Info: matchfetcher.MatchInfo{
			GameCreation: matchfetcher.RiotTime(opts.created),
			GameDuration: opts.duration,
			QueueId:      420,
			Participants: []matchfetcher.MatchPlayer{subject, teammate, enemy},
		},
	}
}

// buildResultSequence creates one simple match per win/loss entry.
func buildResultSequence(results []bool) []*matchfetcher.MatchData {
	matches := make([]*matchfetcher.MatchData, 0, len(results))
	for _, won := range results {
		matches = append(matches, buildMatch(matchOptions{win: won}))
	}
	return matches
}
