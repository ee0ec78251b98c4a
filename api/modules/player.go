package modules

import (
	"riftrewind/api/cache"
	"riftrewind/api/handlers"
	"riftrewind/api/repositories"
	playerservice "riftrewind/api/services/player"
)

func initializePlayerHandler(deps *ModuleDependencies) *handlers.PlayerHandler {
	memCache := cache.NewMemCache()

	var repository repositories.CacheRepository
	if deps.DB != nil {
		repository = repositories.NewCacheRepository(deps.DB)
	}

	reference := cache.NewReferenceCache(&cache.ReferenceCacheDeps{
		Redis:      deps.Redis,
		Repository: repository,
	})

	// Initialize the player service and handler.
	playerDeps := &playerservice.PlayerServiceDeps{
		Clients:   deps.Clients,
		Logger:    deps.Logger,
		MemCache:  memCache,
		Redis:     deps.Redis,
		Reference: reference,
	}

	playerService := playerservice.NewPlayerService(playerDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		PlayerService: playerService,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}
