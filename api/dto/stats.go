package dto

// PlayerStats is the aggregated statistics object built once per request.
// Field names are consumed verbatim by the frontend and the narrative
// prompts, so they must not change.
type PlayerStats struct {
	TotalGames  int     `json:"totalGames"`
	TotalWins   int     `json:"totalWins"`
	TotalLosses int     `json:"totalLosses"`
	WinRate     float64 `json:"winRate"`

	AvgKDA     float64 `json:"avgKDA"`
	AvgKills   float64 `json:"avgKills"`
	AvgDeaths  float64 `json:"avgDeaths"`
	AvgAssists float64 `json:"avgAssists"`

	AvgCS              float64 `json:"avgCS"`
	AvgGold            float64 `json:"avgGold"`
	AvgDamageDealt     float64 `json:"avgDamageDealt"`
	AvgDamageTaken     float64 `json:"avgDamageTaken"`
	AvgHealing         float64 `json:"avgHealing"`
	AvgDamageMitigated float64 `json:"avgDamageMitigated"`
	AvgVisionScore     float64 `json:"avgVisionScore"`
	AvgDragonKills     float64 `json:"avgDragonKills"`
	AvgBaronKills      float64 `json:"avgBaronKills"`
	AvgTurretKills     float64 `json:"avgTurretKills"`
	AvgInhibitorKills  float64 `json:"avgInhibitorKills"`

	AvgKillParticipation float64 `json:"avgKillParticipation"`
	AvgDamageShare       float64 `json:"avgDamageShare"`
	AvgGoldShare         float64 `json:"avgGoldShare"`

	AvgGameDuration float64 `json:"avgGameDuration"`
	LongestGame     int     `json:"longestGame"`
	ShortestGame    int     `json:"shortestGame"`

	PhasePerformance PhasePerformance `json:"phasePerformance"`
	SnowballRate     float64          `json:"snowballRate"`

	LongestWinStreak  int     `json:"longestWinStreak"`
	LongestLossStreak int     `json:"longestLossStreak"`
	FirstBloodRate    float64 `json:"firstBloodRate"`

	TopChampions     []ChampionStats         `json:"topChampions"`
	RoleDistribution map[string]int          `json:"roleDistribution"`
	MostPlayedRole   string                  `json:"mostPlayedRole"`
	BestPerformance  *BestGame               `json:"bestPerformance"`
	Monthly          map[string]MonthlyStats `json:"monthlyPerformance"`

	RecentTrend   string `json:"recentTrend"`
	RecentWinRate float64 `json:"recentWinRate"`

	Achievements Achievements `json:"achievements"`
}

// Per-phase KDA averages, bucketed by total match duration.
type PhasePerformance struct {
	EarlyKDA float64 `json:"earlyGameKDA"`
	MidKDA   float64 `json:"midGameKDA"`
	LateKDA  float64 `json:"lateGameKDA"`
}

// ChampionStats is one entry of the top champion breakdown.
type ChampionStats struct {
	ChampionId   int     `json:"championId"`
	ChampionName string  `json:"championName"`
	GamesPlayed  int     `json:"gamesPlayed"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
	AvgKDA       float64 `json:"avgKDA"`
	AvgKills     float64 `json:"avgKills"`
	AvgDeaths    float64 `json:"avgDeaths"`
	AvgAssists   float64 `json:"avgAssists"`
}

// BestGame is the single highest KDA performance.
type BestGame struct {
	Champion string  `json:"champion"`
	KDA      float64 `json:"kda"`
	Kills    int     `json:"kills"`
	Deaths   int     `json:"deaths"`
	Assists  int     `json:"assists"`
	Win      bool    `json:"win"`
}

// MonthlyStats is the per calendar month win tracking.
type MonthlyStats struct {
	Games int `json:"games"`
	Wins  int `json:"wins"`
}

// Special achievement counters.
type Achievements struct {
	Pentakills  int `json:"pentakills"`
	Quadrakills int `json:"quadrakills"`
}
