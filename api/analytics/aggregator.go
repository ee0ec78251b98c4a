package analytics

import (
	"math"
	"riftrewind/api/dto"
	matchfetcher "riftrewind/fetcher/data/match"
	championvalues "riftrewind/pkg/riotvalues/champion"
	rolevalues "riftrewind/pkg/riotvalues/role"
	"sort"
)

const (
	topChampionCount = 5
	recentWindow     = 10

	// Phase bucket boundaries in seconds of total match duration.
	earlyPhaseMax = 900
	midPhaseMax   = 1500

	// Earned gold above this marks a high early gold game for the snowball rate.
	snowballGoldThreshold = 4500
)

// Accumulated values for a single champion.
type championAccumulator struct {
	championId int
	name       string
	games      int
	wins       int
	kills      int
	deaths     int
	assists    int
}

// AggregateMatches turns the raw match list into the normalized statistics
// object. Matches where the subject did not play are skipped, never fatal,
// and an empty list yields a fully zeroed result.
func AggregateMatches(matches []*matchfetcher.MatchData, puuid string) *dto.PlayerStats {
	stats := emptyStats()
	if len(matches) == 0 {
		return stats
	}

	// Champion and role accumulation keeps first-seen order next to the
	// maps, so tie-breaks are deterministic across runs.
	champions := make(map[int]*championAccumulator)
	var championOrder []int

	roles := make(map[string]int)
	var roleOrder []string

	var results []bool

	var totalWins, totalKills, totalDeaths, totalAssists int
	var totalCS, totalGold, totalDamage, totalTaken, totalHealing, totalMitigated int
	var totalVision, totalDragons, totalBarons, totalTurrets, totalInhibitors int
	var totalDuration, longestGame, shortestGame int
	var firstBloodGames int

	var killShareSum, damageShareSum, goldShareSum float64

	var phaseKDASum [3]float64
	var phaseGames [3]int

	var snowballGames, snowballWins int

	var bestKDA float64
	var bestGame *dto.BestGame

	for _, match := range matches {
		player := findParticipant(match, puuid)
		if player == nil {
			continue
		}

		info := match.Info
		kda := CalculateKDA(player.Kills, player.Deaths, player.Assists)

		// Strictly greater keeps the earlier match on ties.
		if bestGame == nil || kda > bestKDA {
			bestKDA = kda
			bestGame = &dto.BestGame{
				Champion: championvalues.Name(player.ChampionId),
				KDA:      round2(kda),
				Kills:    player.Kills,
				Deaths:   player.Deaths,
				Assists:  player.Assists,
				Win:      player.Win,
			}
		}

		champ, exists := champions[player.ChampionId]
		if !exists {
			champ = &championAccumulator{
				championId: player.ChampionId,
				name:       championvalues.Name(player.ChampionId),
			}
			champions[player.ChampionId] = champ
			championOrder = append(championOrder, player.ChampionId)
		}
		champ.games++
		if player.Win {
			champ.wins++
		}
		champ.kills += player.Kills
		champ.deaths += player.Deaths
		champ.assists += player.Assists

		role := rolevalues.Display(player.TeamPosition)
		if _, exists := roles[role]; !exists {
			roleOrder = append(roleOrder, role)
		}
		roles[role]++

		monthKey := info.GameCreation.Time().Format("2006-01")
		month := stats.Monthly[monthKey]
		month.Games++
		if player.Win {
			month.Wins++
		}
		stats.Monthly[monthKey] = month

		results = append(results, player.Win)
		if player.Win {
			totalWins++
		}

		totalKills += player.Kills
		totalDeaths += player.Deaths
		totalAssists += player.Assists
		totalCS += player.TotalMinionsKilled + player.NeutralMinionsKilled
		totalGold += player.GoldEarned
		totalDamage += player.TotalDamageDealtToChampions
		totalTaken += player.TotalDamageTaken
		totalHealing += player.TotalHeal
		totalMitigated += player.DamageSelfMitigated
		totalVision += player.VisionScore
		totalDragons += player.DragonKills
		totalBarons += player.BaronKills
		totalTurrets += player.TurretKills
		totalInhibitors += player.InhibitorKills

		totalDuration += info.GameDuration
		if info.GameDuration > longestGame {
			longestGame = info.GameDuration
		}
		if shortestGame == 0 || info.GameDuration < shortestGame {
			shortestGame = info.GameDuration
		}

		if player.FirstBloodKill || player.FirstBloodAssist {
			firstBloodGames++
		}

		killShare, damageShare, goldShare := teamContribution(match, player)
		killShareSum += killShare
		damageShareSum += damageShare
		goldShareSum += goldShare

		bucket := phaseBucket(info.GameDuration)
		phaseKDASum[bucket] += kda
		phaseGames[bucket]++

		if player.GoldEarned > snowballGoldThreshold {
			snowballGames++
			if player.Win {
				snowballWins++
			}
		}

		stats.Achievements.Pentakills += player.PentaKills
		stats.Achievements.Quadrakills += player.QuadraKills
	}

	totalGames := len(results)
	if totalGames == 0 {
		return stats
	}

	games := float64(totalGames)

	stats.TotalGames = totalGames
	stats.TotalWins = totalWins
	stats.TotalLosses = totalGames - totalWins
	stats.WinRate = round1(float64(totalWins) / games * 100)

	stats.AvgKDA = round2(CalculateKDA(totalKills, totalDeaths, totalAssists))
	stats.AvgKills = round1(float64(totalKills) / games)
	stats.AvgDeaths = round1(float64(totalDeaths) / games)
	stats.AvgAssists = round1(float64(totalAssists) / games)

	stats.AvgCS = round1(float64(totalCS) / games)
	stats.AvgGold = round1(float64(totalGold) / games)
	stats.AvgDamageDealt = round1(float64(totalDamage) / games)
	stats.AvgDamageTaken = round1(float64(totalTaken) / games)
	stats.AvgHealing = round1(float64(totalHealing) / games)
	stats.AvgDamageMitigated = round1(float64(totalMitigated) / games)
	stats.AvgVisionScore = round1(float64(totalVision) / games)
	stats.AvgDragonKills = round1(float64(totalDragons) / games)
	stats.AvgBaronKills = round1(float64(totalBarons) / games)
	stats.AvgTurretKills = round1(float64(totalTurrets) / games)
	stats.AvgInhibitorKills = round1(float64(totalInhibitors) / games)

	stats.AvgKillParticipation = round1(killShareSum / games)
	stats.AvgDamageShare = round1(damageShareSum / games)
	stats.AvgGoldShare = round1(goldShareSum / games)

	stats.AvgGameDuration = round1(float64(totalDuration) / games)
	stats.LongestGame = longestGame
	stats.ShortestGame = shortestGame

	for bucket := range phaseKDASum {
		var avg float64
		if phaseGames[bucket] > 0 {
			avg = round2(phaseKDASum[bucket] / float64(phaseGames[bucket]))
		}
		switch bucket {
		case 0:
			stats.PhasePerformance.EarlyKDA = avg
		case 1:
			stats.PhasePerformance.MidKDA = avg
		case 2:
			stats.PhasePerformance.LateKDA = avg
		}
	}

	if snowballGames > 0 {
		stats.SnowballRate = round1(float64(snowballWins) / float64(snowballGames) * 100)
	}

	maxWin, maxLoss := MaxStreaks(results)
	stats.LongestWinStreak = maxWin
	stats.LongestLossStreak = maxLoss
	stats.FirstBloodRate = round1(float64(firstBloodGames) / games * 100)

	stats.TopChampions = topChampions(champions, championOrder)
	stats.RoleDistribution = roles
	stats.MostPlayedRole = mostPlayedRole(roles, roleOrder)
	stats.BestPerformance = bestGame

	recentGames := totalGames
	if recentGames > recentWindow {
		recentGames = recentWindow
	}
	recentWins := 0
	for _, won := range results[:recentGames] {
		if won {
			recentWins++
		}
	}
	recentWinRate := round1(float64(recentWins) / float64(recentGames) * 100)
	stats.RecentWinRate = recentWinRate

	switch {
	case recentWinRate > stats.WinRate:
		stats.RecentTrend = "Improving"
	case recentWinRate < stats.WinRate:
		stats.RecentTrend = "Declining"
	default:
		stats.RecentTrend = "Stable"
	}

	return stats
}

// CalculateKDA computes (kills + assists) / max(deaths, 1).
// Deaths are floor-clamped to 1 so the ratio is always finite.
func CalculateKDA(kills int, deaths int, assists int) float64 {
	if deaths < 1 {
		deaths = 1
	}
	return float64(kills+assists) / float64(deaths)
}

// MaxStreaks returns the longest consecutive win and loss runs.
// A streak still open at the end of the sequence counts toward its max.
func MaxStreaks(results []bool) (maxWin int, maxLoss int) {
	current := 0
	var lastResult bool

	for i, won := range results {
		if i > 0 && won == lastResult {
			current++
		} else {
			closeStreak(lastResult, current, &maxWin, &maxLoss)
			current = 1
		}
		lastResult = won
	}

	closeStreak(lastResult, current, &maxWin, &maxLoss)
	return maxWin, maxLoss
}

func closeStreak(won bool, length int, maxWin *int, maxLoss *int) {
	if length == 0 {
		return
	}
	if won && length > *maxWin {
		*maxWin = length
	}
	if !won && length > *maxLoss {
		*maxLoss = length
	}
}

// findParticipant locates the subject inside a match, nil when absent.
func findParticipant(match *matchfetcher.MatchData, puuid string) *matchfetcher.MatchPlayer {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].Puuid == puuid {
			return &match.Info.Participants[i]
		}
	}
	return nil
}

// teamContribution computes the subject's kill participation and damage and
// gold shares against their own team totals. A zero team total contributes
// zero instead of dividing.
func teamContribution(match *matchfetcher.MatchData, player *matchfetcher.MatchPlayer) (killShare float64, damageShare float64, goldShare float64) {
	var teamKills, teamDamage, teamGold int

	for i := range match.Info.Participants {
		teammate := &match.Info.Participants[i]
		if teammate.TeamId != player.TeamId {
			continue
		}
		teamKills += teammate.Kills
		teamDamage += teammate.TotalDamageDealtToChampions
		teamGold += teammate.GoldEarned
	}

	if teamKills > 0 {
		killShare = float64(player.Kills+player.Assists) / float64(teamKills) * 100
		// Inconsistently attributed assists can push participation past the
		// team kill count, cap before averaging.
		if killShare > 100 {
			killShare = 100
		}
	}
	if teamDamage > 0 {
		damageShare = float64(player.TotalDamageDealtToChampions) / float64(teamDamage) * 100
	}
	if teamGold > 0 {
		goldShare = float64(player.GoldEarned) / float64(teamGold) * 100
	}

	return killShare, damageShare, goldShare
}

// phaseBucket classifies a match by total duration in seconds.
func phaseBucket(duration int) int {
	switch {
	case duration <= earlyPhaseMax:
		return 0
	case duration <= midPhaseMax:
		return 1
	default:
		return 2
	}
}

// topChampions builds the ranked champion breakdown, descending by game
// count with first-seen order breaking ties, truncated to the top five.
func topChampions(champions map[int]*championAccumulator, order []int) []dto.ChampionStats {
	ranked := make([]*championAccumulator, 0, len(order))
	for _, championId := range order {
		ranked = append(ranked, champions[championId])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].games > ranked[j].games
	})

	if len(ranked) > topChampionCount {
		ranked = ranked[:topChampionCount]
	}

	top := make([]dto.ChampionStats, 0, len(ranked))
	for _, champ := range ranked {
		games := float64(champ.games)
		top = append(top, dto.ChampionStats{
			ChampionId:   champ.championId,
			ChampionName: champ.name,
			GamesPlayed:  champ.games,
			Wins:         champ.wins,
			Losses:       champ.games - champ.wins,
			WinRate:      round1(float64(champ.wins) / games * 100),
			AvgKDA:       round2(CalculateKDA(champ.kills, champ.deaths, champ.assists)),
			AvgKills:     round1(float64(champ.kills) / games),
			AvgDeaths:    round1(float64(champ.deaths) / games),
			AvgAssists:   round1(float64(champ.assists) / games),
		})
	}

	return top
}

// mostPlayedRole picks the highest game count, first-seen order on ties.
func mostPlayedRole(roles map[string]int, order []string) string {
	best := "Unknown"
	bestGames := 0
	for _, role := range order {
		if roles[role] > bestGames {
			best = role
			bestGames = roles[role]
		}
	}
	return best
}

// emptyStats returns the zeroed statistics object with empty collections.
func emptyStats() *dto.PlayerStats {
	return &dto.PlayerStats{
		TopChampions:     []dto.ChampionStats{},
		RoleDistribution: map[string]int{},
		Monthly:          map[string]dto.MonthlyStats{},
		MostPlayedRole:   "Unknown",
		RecentTrend:      "Unknown",
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
