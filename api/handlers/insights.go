package handlers

import (
	"context"
	"errors"
	"net/http"
	"riftrewind/api/dto"
	insightsservice "riftrewind/api/services/insights"
	"riftrewind/pkg/regions"

	"github.com/gin-gonic/gin"
)

// InsightsHandler is the handler for the narrative endpoints.
type InsightsHandler struct {
	insightsService *insightsservice.InsightsService
}

// InsightsHandlerDependencies holds the handler dependencies.
type InsightsHandlerDependencies struct {
	InsightsService *insightsservice.InsightsService
}

// NewInsightsHandler creates a new instance of the insights handler.
func NewInsightsHandler(deps *InsightsHandlerDependencies) *InsightsHandler {
	return &InsightsHandler{
		insightsService: deps.InsightsService,
	}
}

// GenerateRecap handles requests for the year recap narrative.
func (h *InsightsHandler) GenerateRecap(c *gin.Context) {
	h.generate(c, h.insightsService.GenerateRecap)
}

// GenerateRoast handles requests for the roast narrative.
func (h *InsightsHandler) GenerateRoast(c *gin.Context) {
	h.generate(c, h.insightsService.GenerateRoast)
}

// GeneratePersonality handles requests for the personality profile.
func (h *InsightsHandler) GeneratePersonality(c *gin.Context) {
	h.generate(c, h.insightsService.GeneratePersonality)
}

// GetUsageReport handles requests for the model usage totals.
func (h *InsightsHandler) GetUsageReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.insightsService.UsageReport())
}

// generate runs one narrative flow, the three endpoints only differ by
// the service call.
func (h *InsightsHandler) generate(
	c *gin.Context,
	serviceCall func(ctx context.Context, region regions.SubRegion, gameName string, tagLine string, matchCount int) (*dto.NarrativeResponse, error),
) {
	region, gameName, tagLine, matchCount, ok := bindNarrativeRequest(c)
	if !ok {
		return
	}

	result, err := serviceCall(c.Request.Context(), region, gameName, tagLine, matchCount)
	if err != nil {
		status := statusForServiceError(err)
		if errors.Is(err, insightsservice.ErrNarrativeUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
