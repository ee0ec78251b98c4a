package modules

import (
	"riftrewind/api/handlers"
	gemsservice "riftrewind/api/services/gems"
)

func initializeGemsHandler(deps *ModuleDependencies) *handlers.GemsHandler {
	gemsDeps := &gemsservice.GemsServiceDeps{
		Clients: deps.Clients,
		Bedrock: deps.Bedrock,
	}

	gemsService := gemsservice.NewGemsService(gemsDeps)

	gemsHandlerDeps := &handlers.GemsHandlerDependencies{
		GemsService: gemsService,
	}

	return handlers.NewGemsHandler(gemsHandlerDeps)
}
