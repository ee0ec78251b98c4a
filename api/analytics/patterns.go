package analytics

import (
	"fmt"
	"riftrewind/api/dto"
	matchfetcher "riftrewind/fetcher/data/match"
)

const (
	maxDiscoveries = 6

	// A time or day bucket needs this many games and win rate to surface.
	patternMinGames   = 5
	patternMinWinRate = 55

	// Long games are treated as a comeback proxy until timeline based
	// detection lands across the whole match list.
	longGameMinutes     = 35
	longGameMinSample   = 10
	roleDominatorGames  = 5
	roleDominatorWinPct = 60
)

// DetectPatterns runs the independent discovery passes over the match list
// and concatenates their results, capped to the six most interesting.
// The pass order is fixed so the cap always favors the same categories.
func DetectPatterns(matches []*matchfetcher.MatchData, puuid string) []dto.Discovery {
	var gems []dto.Discovery

	gems = append(gems, timePatterns(matches, puuid)...)
	gems = append(gems, streakPatterns(matches, puuid)...)
	gems = append(gems, rolePatterns(matches, puuid)...)
	gems = append(gems, synergyPatterns(matches, puuid)...)
	gems = append(gems, longGamePatterns(matches, puuid)...)

	if len(gems) > maxDiscoveries {
		gems = gems[:maxDiscoveries]
	}
	return gems
}

type bucketRecord struct {
	wins  int
	games int
}

func (b bucketRecord) winRate() float64 {
	if b.games == 0 {
		return 0
	}
	return float64(b.wins) / float64(b.games) * 100
}

// timePatterns buckets matches by local hour window and by weekday and
// surfaces the single best bucket of each kind.
func timePatterns(matches []*matchfetcher.MatchData, puuid string) []dto.Discovery {
	var patterns []dto.Discovery

	timeBuckets := make(map[string]*bucketRecord)
	var timeOrder []string
	dayBuckets := make(map[string]*bucketRecord)
	var dayOrder []string

	for _, match := range matches {
		player := findParticipant(match, puuid)
		if player == nil {
			continue
		}

		created := match.Info.GameCreation.Time()
		slot := timeSlot(created.Hour())
		day := created.Weekday().String()

		record(timeBuckets, &timeOrder, slot, player.Win)
		record(dayBuckets, &dayOrder, day, player.Win)
	}

	if best := bestBucket(timeBuckets, timeOrder); best != "" {
		bucket := timeBuckets[best]
		patterns = append(patterns, dto.Discovery{
			Title: fmt.Sprintf("%s Performer", capitalize(best)),
			Description: fmt.Sprintf(
				"You perform best during the %s with a %.1f%% win rate across %d games!",
				best, bucket.winRate(), bucket.games,
			),
			Rarity:   4,
			Category: "time",
		})
	}

	if best := bestBucket(dayBuckets, dayOrder); best != "" {
		bucket := dayBuckets[best]
		patterns = append(patterns, dto.Discovery{
			Title: fmt.Sprintf("%s Specialist", best),
			Description: fmt.Sprintf(
				"Your %s win rate is %.1f%%, significantly above your overall average!",
				best, bucket.winRate(),
			),
			Rarity:   3,
			Category: "time",
		})
	}

	return patterns
}

func record(buckets map[string]*bucketRecord, order *[]string, key string, won bool) {
	bucket, exists := buckets[key]
	if !exists {
		bucket = &bucketRecord{}
		buckets[key] = bucket
		*order = append(*order, key)
	}
	bucket.games++
	if won {
		bucket.wins++
	}
}

// bestBucket picks the highest win rate bucket that clears the game count
// and win rate floors. First-seen order breaks ties.
func bestBucket(buckets map[string]*bucketRecord, order []string) string {
	best := ""
	bestRate := -1.0
	for _, key := range order {
		if rate := buckets[key].winRate(); rate > bestRate {
			best = key
			bestRate = rate
		}
	}

	if best == "" {
		return ""
	}
	bucket := buckets[best]
	if bucket.games < patternMinGames || bucket.winRate() < patternMinWinRate {
		return ""
	}
	return best
}

// capitalize uppercases the first letter of a slot name.
func capitalize(value string) string {
	if value == "" {
		return value
	}
	return string(value[0]-'a'+'A') + value[1:]
}

// timeSlot maps a local hour to one of the four fixed windows.
func timeSlot(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	case hour >= 18:
		return "evening"
	default:
		return "night"
	}
}

// streakPatterns surfaces the longest win and loss runs when they reach
// five games.
func streakPatterns(matches []*matchfetcher.MatchData, puuid string) []dto.Discovery {
	var results []bool
	for _, match := range matches {
		player := findParticipant(match, puuid)
		if player == nil {
			continue
		}
		results = append(results, player.Win)
	}

	maxWin, maxLoss := MaxStreaks(results)

	var patterns []dto.Discovery
	if maxWin >= 5 {
		patterns = append(patterns, dto.Discovery{
			Title: "Win Streak Master",
			Description: fmt.Sprintf(
				"You achieved an impressive %d-game win streak! That's mental fortitude!", maxWin,
			),
			Rarity:   5,
			Category: "performance",
		})
	}
	if maxLoss >= 5 {
		patterns = append(patterns, dto.Discovery{
			Title: "Resilience Badge",
			Description: fmt.Sprintf(
				"You pushed through a %d-game loss streak and kept playing. That's determination!", maxLoss,
			),
			Rarity:   3,
			Category: "mental",
		})
	}
	return patterns
}

// rolePatterns emits a dominator insight for every role with enough games
// and a high enough win rate. More than one role can qualify.
func rolePatterns(matches []*matchfetcher.MatchData, puuid string) []dto.Discovery {
	type roleRecord struct {
		wins    int
		games   int
		kills   int
		deaths  int
		assists int
	}

	roles := make(map[string]*roleRecord)
	var order []string

	for _, match := range matches {
		player := findParticipant(match, puuid)
		if player == nil {
			continue
		}

		position := player.TeamPosition
		if position == "" {
			position = "UNKNOWN"
		}

		role, exists := roles[position]
		if !exists {
			role = &roleRecord{}
			roles[position] = role
			order = append(order, position)
		}
		role.games++
		if player.Win {
			role.wins++
		}
		role.kills += player.Kills
		role.deaths += player.Deaths
		role.assists += player.Assists
	}

	var patterns []dto.Discovery
	for _, position := range order {
		role := roles[position]
		if role.games < roleDominatorGames {
			continue
		}

		winRate := float64(role.wins) / float64(role.games) * 100
		if winRate < roleDominatorWinPct {
			continue
		}

		kda := CalculateKDA(role.kills, role.deaths, role.assists)
		patterns = append(patterns, dto.Discovery{
			Title: fmt.Sprintf("%s Dominator", position),
			Description: fmt.Sprintf(
				"You have a %.1f%% win rate as %s with %.2f KDA. This is your power role!",
				winRate, position, kda,
			),
			Rarity:   4,
			Category: "role",
		})
	}
	return patterns
}

// synergyPatterns is the extension point for teammate champion analysis.
// It needs per-teammate champion aggregation across the match list and
// stays empty until that lands.
func synergyPatterns(matches []*matchfetcher.MatchData, puuid string) []dto.Discovery {
	return nil
}

// longGamePatterns uses long match duration as a comeback proxy.
func longGamePatterns(matches []*matchfetcher.MatchData, puuid string) []dto.Discovery {
	var longGames, longGameWins int

	for _, match := range matches {
		if match.Info.GameDuration < longGameMinutes*60 {
			continue
		}
		player := findParticipant(match, puuid)
		if player == nil {
			continue
		}
		longGames++
		if player.Win {
			longGameWins++
		}
	}

	if longGames < longGameMinSample {
		return nil
	}

	winRate := float64(longGameWins) / float64(longGames) * 100
	if winRate < patternMinWinRate {
		return nil
	}

	return []dto.Discovery{{
		Title: "Comeback King",
		Description: fmt.Sprintf(
			"You have a %.1f%% win rate in long games (35+ min). You never give up!", winRate,
		),
		Rarity:   4,
		Category: "mental",
	}}
}
