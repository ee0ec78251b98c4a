package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"riftrewind/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	playerHandler := &handlers.PlayerHandler{}
	gemsHandler := &handlers.GemsHandler{}
	insightsHandler := &handlers.InsightsHandler{}

	router.SetupRoutes(playerHandler, gemsHandler, insightsHandler)

	registered := make(map[string]bool)
	for _, route := range router.Engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["GET /api/v1/player/:region/:riotId"])
	assert.True(t, registered["GET /api/v1/regions"])
	assert.True(t, registered["POST /api/v1/gems"])
	assert.True(t, registered["POST /api/v1/insights/recap"])
	assert.True(t, registered["POST /api/v1/insights/roast"])
	assert.True(t, registered["POST /api/v1/insights/personality"])
	assert.True(t, registered["GET /api/v1/insights/usage"])
}

func TestHealthRoute(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.Engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
