package handlers

import (
	"errors"
	"net/http"
	"riftrewind/api/filters"
	"riftrewind/api/services"
	playerservice "riftrewind/api/services/player"
	"riftrewind/pkg/regions"
	"sort"

	"github.com/gin-gonic/gin"
)

// PlayerHandler is the handler for the player endpoints.
type PlayerHandler struct {
	playerService *playerservice.PlayerService
}

// PlayerHandlerDependencies holds the handler dependencies.
type PlayerHandlerDependencies struct {
	PlayerService *playerservice.PlayerService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		playerService: deps.PlayerService,
	}
}

// GetPlayerStats handles requests for the composed player statistics.
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	var qp filters.PlayerStatsParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := filters.ParseRegion(c.Params.ByName("region"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameName, tagLine, err := filters.SplitRiotId(c.Params.ByName("riotId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.GetPlayerStats(c.Request.Context(), region, gameName, tagLine, qp.MatchCount)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRegions returns the supported platforms grouped by routing region.
func (h *PlayerHandler) GetRegions(c *gin.Context) {
	grouped := make(map[string][]string, len(regions.RegionList))
	for main, subs := range regions.RegionList {
		platforms := make([]string, 0, len(subs))
		for _, sub := range subs {
			platforms = append(platforms, string(sub))
		}
		sort.Strings(platforms)
		grouped[string(main)] = platforms
	}

	c.JSON(http.StatusOK, gin.H{"regions": grouped})
}

// statusForServiceError maps the service error kinds to HTTP statuses.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrPlayerNotFound), errors.Is(err, services.ErrNoMatches):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
