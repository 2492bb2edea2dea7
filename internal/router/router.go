package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriquery/backend/internal/api"
	"github.com/nutriquery/backend/internal/middleware"
)

// Handlers carries the endpoint handlers the router mounts.
type Handlers struct {
	Query   *api.QueryHandler
	Recipes *api.RecipeHandler
	Plans   *api.PlanHandler
}

// SetupRouter configures the application routes. queryLimiter and
// h.Plans are nil when Redis is not configured; their features are
// simply absent.
func SetupRouter(h Handlers, queryLimiter gin.HandlerFunc, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	router.GET("/", api.Root)
	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	h.Query.RegisterRoutes(v1, queryLimiter)
	h.Recipes.RegisterRoutes(v1)
	if h.Plans != nil {
		h.Plans.RegisterRoutes(v1)
	}

	return router
}
