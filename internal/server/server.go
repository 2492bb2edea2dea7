package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nutriquery/backend/config"
	"github.com/nutriquery/backend/internal/api"
	"github.com/nutriquery/backend/internal/database"
	"github.com/nutriquery/backend/internal/middleware"
	"github.com/nutriquery/backend/internal/router"
	"github.com/nutriquery/backend/internal/service"
)

// Server wires the service graph and owns the HTTP listener.
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New assembles the full service: catalog reads against db, the
// interpreter against the configured chat endpoint and, when Redis is
// configured, the plan store plus the query rate limiter. An
// unreachable Redis degrades those two features instead of failing
// startup.
func New(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *Server {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		plans        service.IPlanStore
		planHandler  *api.PlanHandler
		queryLimiter gin.HandlerFunc
	)
	if cfg.RedisEnabled() {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("redis unavailable, plan store and rate limiting disabled", zap.Error(err))
		} else {
			plans = service.NewPlanStore(redisClient)
			planHandler = api.NewPlanHandler(plans, logger)
			queryLimiter = middleware.NewQueryRateLimiter(redisClient, cfg.QueryRateLimit, cfg.QueryRateWindow).Middleware()
		}
	}

	interpreter := service.NewInterpreter(cfg.LLMAPIURL, cfg.LLMModel, cfg.LLMAPIKey, cfg.LLMTimeout, logger)
	catalog := service.NewCatalogService(db)
	planner := service.NewPlannerService(interpreter, catalog, plans, logger)

	engine := router.SetupRouter(router.Handlers{
		Query:   api.NewQueryHandler(planner, logger),
		Recipes: api.NewRecipeHandler(catalog),
		Plans:   planHandler,
	}, queryLimiter, logger)

	return &Server{
		http: &http.Server{
			Addr:              cfg.ServerAddr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving HTTP until Shutdown is called or the listener
// fails.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, waiting at most five seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
