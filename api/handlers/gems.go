package handlers

import (
	"net/http"
	"riftrewind/api/filters"
	gemsservice "riftrewind/api/services/gems"
	"riftrewind/pkg/regions"

	"github.com/gin-gonic/gin"
)

// GemsHandler is the handler for the hidden gems endpoint.
type GemsHandler struct {
	gemsService *gemsservice.GemsService
}

// GemsHandlerDependencies holds the handler dependencies.
type GemsHandlerDependencies struct {
	GemsService *gemsservice.GemsService
}

// NewGemsHandler creates a new instance of the gems handler.
func NewGemsHandler(deps *GemsHandlerDependencies) *GemsHandler {
	return &GemsHandler{
		gemsService: deps.GemsService,
	}
}

// DiscoverGems handles requests for hidden pattern discovery.
func (h *GemsHandler) DiscoverGems(c *gin.Context) {
	region, gameName, tagLine, matchCount, ok := bindNarrativeRequest(c)
	if !ok {
		return
	}

	result, err := h.gemsService.DiscoverGems(c.Request.Context(), region, gameName, tagLine, matchCount)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// bindNarrativeRequest parses the shared body of the narrative endpoints.
// On failure the error response is already written.
func bindNarrativeRequest(c *gin.Context) (region regions.SubRegion, gameName string, tagLine string, matchCount int, ok bool) {
	var body filters.NarrativeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsedRegion, err := filters.ParseRegion(body.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameName, tagLine, err = filters.SplitRiotId(body.SummonerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matchCount = body.MatchCount
	if matchCount < 1 || matchCount > 100 {
		matchCount = 20
	}

	return parsedRegion, gameName, tagLine, matchCount, true
}
