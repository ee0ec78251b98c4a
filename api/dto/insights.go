package dto

// RankInsight is the competitive standing analysis for the solo queue.
type RankInsight struct {
	HasRanked bool   `json:"has_ranked"`
	Message   string `json:"message,omitempty"`

	Tier           string       `json:"tier,omitempty"`
	Rank           string       `json:"rank,omitempty"`
	LP             int          `json:"lp,omitempty"`
	FullRank       string       `json:"full_rank,omitempty"`
	Wins           int          `json:"wins,omitempty"`
	Losses         int          `json:"losses,omitempty"`
	WinRate        float64      `json:"win_rate,omitempty"`
	MMRProxy       int          `json:"mmr_proxy,omitempty"`
	Percentile     float64      `json:"percentile,omitempty"`
	PercentileText string       `json:"percentile_text,omitempty"`
	HotStreak      bool         `json:"hot_streak,omitempty"`
	Veteran        bool         `json:"veteran,omitempty"`
	Insights       []string     `json:"insights,omitempty"`
	RankDisplay    *RankDisplay `json:"rank_display,omitempty"`
}

// Display metadata for a tier.
type RankDisplay struct {
	TierColor string `json:"tier_color"`
	TierIcon  string `json:"tier_icon"`
}

// TimelineInsight is the per-minute analysis of a single match.
type TimelineInsight struct {
	Available bool `json:"available"`

	LaningPhase     *LaningPhase  `json:"laning_phase,omitempty"`
	Comeback        *Comeback     `json:"comeback,omitempty"`
	FirstBlood      *FirstBlood   `json:"first_blood,omitempty"`
	EarlyGameRating string        `json:"early_game_rating,omitempty"`
}

// CS and gold at the fixed minute marks.
type LaningPhase struct {
	CSAt10     int     `json:"cs_at_10"`
	CSAt15     int     `json:"cs_at_15"`
	CSAt20     int     `json:"cs_at_20"`
	CSPerMin15 float64 `json:"cs_per_min_15"`
	GoldAt15   int     `json:"gold_at_15"`
}

// Comeback detection result.
type Comeback struct {
	IsComeback       bool   `json:"is_comeback"`
	GoldDeficit15Min int    `json:"gold_deficit_15min"`
	Message          string `json:"message,omitempty"`
}

// First blood participation.
type FirstBlood struct {
	Participated bool   `json:"participated"`
	Role         string `json:"role,omitempty"`
	Timestamp    int64  `json:"timestamp,omitempty"`
}

// ChallengeInsight is the rare achievement analysis.
type ChallengeInsight struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`

	TotalLevel        string             `json:"total_level,omitempty"`
	TotalCurrent      float64            `json:"total_current,omitempty"`
	TotalMax          float64            `json:"total_max,omitempty"`
	RareAchievements  []RareAchievement  `json:"rare_achievements,omitempty"`
	CategoryStrengths *CategoryStrengths `json:"category_strengths,omitempty"`
	Summary           string             `json:"summary,omitempty"`
}

// RareAchievement is one challenge at or above the 90th percentile.
type RareAchievement struct {
	ChallengeId int64   `json:"challenge_id"`
	Percentile  float64 `json:"percentile"`
	Level       string  `json:"level"`
	Value       float64 `json:"value"`
	Rarity      string  `json:"rarity"`
	Icon        string  `json:"icon"`
}

// CategoryStrengths is the strongest challenge category analysis.
type CategoryStrengths struct {
	StrongestCategory string             `json:"strongest_category"`
	StrongestPoints   float64            `json:"strongest_points"`
	AllCategories     map[string]float64 `json:"all_categories"`
	StrengthInfo      string             `json:"strength_info,omitempty"`
}

// ClashInsight is the tournament participation analysis.
type ClashInsight struct {
	HasParticipated  bool     `json:"has_participated"`
	Message          string   `json:"message,omitempty"`
	TotalTournaments int      `json:"total_tournaments,omitempty"`
	UniqueTeams      int      `json:"unique_teams,omitempty"`
	CompetitiveLevel string   `json:"competitive_level,omitempty"`
	Insights         []string `json:"insights,omitempty"`
}

// MasteryInsight is the champion mastery analysis.
type MasteryInsight struct {
	TotalScore int64  `json:"total_score"`
	Message    string `json:"message,omitempty"`

	Tier               string   `json:"tier,omitempty"`
	Mastery7Champions  int      `json:"mastery_7_champions"`
	Mastery6Champions  int      `json:"mastery_6_champions"`
	Mastery5Champions  int      `json:"mastery_5_champions"`
	DiversityScore     int      `json:"diversity_score"`
	DiversityRating    string   `json:"diversity_rating,omitempty"`
	Insights           []string `json:"insights,omitempty"`
}

// RotationInsight is the free rotation usage analysis.
type RotationInsight struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`

	CurrentFreeCount    int      `json:"current_free_count,omitempty"`
	PlayedFreeChampions int      `json:"played_free_champions,omitempty"`
	FreeUsageRate       float64  `json:"free_usage_rate,omitempty"`
	UsesFreeChampions   bool     `json:"uses_free_champions"`
	Insights            []string `json:"insights,omitempty"`
}

// EnrichedChallenges joins player challenges against the config reference.
type EnrichedChallenges struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`

	Challenges          []EnrichedChallenge `json:"enriched_challenges,omitempty"`
	HasNamedChallenges  bool                `json:"has_named_challenges"`
}

// EnrichedChallenge is one rare challenge with human readable metadata.
type EnrichedChallenge struct {
	ChallengeId int64    `json:"challenge_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Percentile  float64  `json:"percentile"`
	Level       string   `json:"level"`
	Value       float64  `json:"value"`
	Tags        []string `json:"tags"`
	Rarity      string   `json:"rarity"`
}
