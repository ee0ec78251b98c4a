package dto

// Summoner identification block of the composed response.
type SummonerInfo struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	ProfileIconId int    `json:"profileIconId"`
	Puuid         string `json:"puuid"`
}

// EnhancedAnalytics groups every analyzer output.
// Each branch is independently present or a marker object, never partial.
type EnhancedAnalytics struct {
	Ranked             *RankInsight        `json:"ranked"`
	Challenges         *ChallengeInsight   `json:"challenges"`
	ChallengesEnriched *EnrichedChallenges `json:"challenges_enriched"`
	RecentTimeline     *TimelineInsight    `json:"recent_match_timeline"`
	Clash              *ClashInsight       `json:"clash"`
	Mastery            *MasteryInsight     `json:"mastery"`
	FreeRotation       *RotationInsight    `json:"free_rotation"`
}

// PlayerStatsResponse is the full composed payload of the stats endpoint.
type PlayerStatsResponse struct {
	Summoner          SummonerInfo      `json:"summoner"`
	Stats             *PlayerStats      `json:"stats"`
	MatchCount        int               `json:"matchCount"`
	EnhancedAnalytics EnhancedAnalytics `json:"enhanced_analytics"`
}

// Discovery is one heuristically detected pattern.
type Discovery struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Rarity      int    `json:"rarity"`
	Category    string `json:"category"`
}

// HiddenGemsResponse is the payload of the hidden gems endpoint.
type HiddenGemsResponse struct {
	Summoner  string      `json:"summoner"`
	Gems      []Discovery `json:"gems"`
	Narrative string      `json:"narrative,omitempty"`
	ModelUsed string      `json:"model_used,omitempty"`
}

// NarrativeResponse is the payload of the AI text endpoints.
type NarrativeResponse struct {
	Summoner  string `json:"summoner"`
	Text      string `json:"text"`
	ModelUsed string `json:"model_used"`
}
