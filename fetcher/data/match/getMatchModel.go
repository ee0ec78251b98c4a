package matchfetcher

// Return type from the match_v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// Match metadata.
type MatchMetadata struct {
	MatchId string `json:"matchId"`
}

// Match information.
type MatchInfo struct {
	EndOfGameResult string        `json:"endOfGameResult"`
	GameCreation    RiotTime      `json:"gameCreation"`
	GameDuration    int           `json:"gameDuration"`
	GameVersion     string        `json:"gameVersion"`
	Participants    []MatchPlayer `json:"participants"`
	QueueId         int           `json:"queueId"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
type MatchPlayer struct {
	Assists                     int    `json:"assists"`
	BaronKills                  int    `json:"baronKills"`
	ChampionId                  int    `json:"championId"`
	DamageSelfMitigated         int    `json:"damageSelfMitigated"`
	Deaths                      int    `json:"deaths"`
	DragonKills                 int    `json:"dragonKills"`
	FirstBloodAssist            bool   `json:"firstBloodAssist"`
	FirstBloodKill              bool   `json:"firstBloodKill"`
	GoldEarned                  int    `json:"goldEarned"`
	InhibitorKills              int    `json:"inhibitorKills"`
	Kills                       int    `json:"kills"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	ParticipantId               int    `json:"participantId"`
	PentaKills                  int    `json:"pentaKills"`
	Puuid                       string `json:"puuid"`
	QuadraKills                 int    `json:"quadraKills"`
	TeamId                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int    `json:"totalDamageTaken"`
	TotalHeal                   int    `json:"totalHeal"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	TurretKills                 int    `json:"turretKills"`
	VisionScore                 int    `json:"visionScore"`
	Win                         bool   `json:"win"`
}
