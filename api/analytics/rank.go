package analytics

import (
	"fmt"
	"riftrewind/api/dto"
	leaguefetcher "riftrewind/fetcher/data/league"
	queuevalues "riftrewind/pkg/riotvalues/queue"
	tiervalues "riftrewind/pkg/riotvalues/tier"
)

// AnalyzeRank builds the competitive standing insight from the league
// entries. Only the solo queue entry counts, any other queue alone still
// reports has_ranked false.
func AnalyzeRank(entries []leaguefetcher.LeagueEntry) *dto.RankInsight {
	if len(entries) == 0 {
		return &dto.RankInsight{
			HasRanked: false,
			Message:   "No ranked games this season",
		}
	}

	var soloQueue *leaguefetcher.LeagueEntry
	for i := range entries {
		if entries[i].QueueType != nil && *entries[i].QueueType == queuevalues.RankedSolo {
			soloQueue = &entries[i]
			break
		}
	}

	if soloQueue == nil {
		return &dto.RankInsight{
			HasRanked: false,
			Message:   "No solo queue ranked games",
		}
	}

	tier := "UNRANKED"
	if soloQueue.Tier != nil {
		tier = *soloQueue.Tier
	}
	rank := ""
	if soloQueue.Rank != nil {
		rank = *soloQueue.Rank
	}

	totalGames := soloQueue.Wins + soloQueue.Losses
	var winRate float64
	if totalGames > 0 {
		winRate = float64(soloQueue.Wins) / float64(totalGames) * 100
	}

	percentile := tiervalues.Percentile(tier)

	var insights []string
	if soloQueue.HotStreak {
		insights = append(insights, "🔥 Currently on a hot streak!")
	}
	if soloQueue.Veteran {
		insights = append(insights, "⭐ Veteran player in this tier")
	}
	if winRate >= 55 {
		insights = append(insights, fmt.Sprintf("📈 Strong %.1f%% win rate - climbing fast!", winRate))
	} else if winRate <= 45 {
		insights = append(insights, fmt.Sprintf("⚠️ %.1f%% win rate - focus on consistency", winRate))
	}
	if soloQueue.LeaguePoints >= 75 {
		insights = append(insights, fmt.Sprintf("🎯 Close to promos! (%d LP)", soloQueue.LeaguePoints))
	}

	return &dto.RankInsight{
		HasRanked:      true,
		Tier:           tier,
		Rank:           rank,
		LP:             soloQueue.LeaguePoints,
		FullRank:       fmt.Sprintf("%s %s", tier, rank),
		Wins:           soloQueue.Wins,
		Losses:         soloQueue.Losses,
		WinRate:        round1(winRate),
		MMRProxy:       tiervalues.CalculateProxy(tier, rank, soloQueue.LeaguePoints),
		Percentile:     percentile,
		PercentileText: fmt.Sprintf("Top %.1f%%", 100-percentile),
		HotStreak:      soloQueue.HotStreak,
		Veteran:        soloQueue.Veteran,
		Insights:       insights,
		RankDisplay: &dto.RankDisplay{
			TierColor: tiervalues.Color(tier),
			TierIcon:  tiervalues.Icon(tier),
		},
	}
}
