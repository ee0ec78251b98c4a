package filters

import (
	"errors"
	"riftrewind/pkg/regions"
	"strings"
)

// Riot ids come in as "gameName#tagLine".
var ErrInvalidRiotId = errors.New("riot id must be in the gameName#tagLine format")

// ErrInvalidRegion marks an unknown platform routing value.
var ErrInvalidRegion = errors.New("unknown region")

// PlayerStatsParams are the query parameters of the stats endpoint.
type PlayerStatsParams struct {
	MatchCount int `form:"match_count,default=20" binding:"gte=1,lte=100"`
}

// NarrativeRequest is the body of the narrative and gems endpoints.
type NarrativeRequest struct {
	SummonerName string `json:"summoner_name" binding:"required"`
	Region       string `json:"region" binding:"required"`
	MatchCount   int    `json:"match_count"`
}

// SplitRiotId breaks a riot id into it's game name and tag line.
func SplitRiotId(riotId string) (string, string, error) {
	name, tag, found := strings.Cut(riotId, "#")
	if !found || name == "" || tag == "" {
		return "", "", ErrInvalidRiotId
	}
	return name, tag, nil
}

// ParseRegion validates a platform routing value.
func ParseRegion(value string) (regions.SubRegion, error) {
	subRegion := regions.SubRegion(strings.ToUpper(value))
	if !regions.Valid(subRegion) {
		return "", ErrInvalidRegion
	}
	return subRegion, nil
}
