package modules

import (
	"riftrewind/api/handlers"
	insightsservice "riftrewind/api/services/insights"
)

func initializeInsightsHandler(deps *ModuleDependencies) *handlers.InsightsHandler {
	insightsDeps := &insightsservice.InsightsServiceDeps{
		Clients: deps.Clients,
		Bedrock: deps.Bedrock,
		Tracker: deps.Tracker,
	}

	insightsService := insightsservice.NewInsightsService(insightsDeps)

	insightsHandlerDeps := &handlers.InsightsHandlerDependencies{
		InsightsService: insightsService,
	}

	return handlers.NewInsightsHandler(insightsHandlerDeps)
}
