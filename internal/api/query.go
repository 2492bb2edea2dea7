package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriquery/backend/internal/service"
	"github.com/nutriquery/backend/internal/types"
)

// QueryHandler serves the natural-language meal planning endpoint.
type QueryHandler struct {
	planner service.IPlannerService
	logger  *zap.Logger
}

// NewQueryHandler creates a new QueryHandler instance.
func NewQueryHandler(planner service.IPlannerService, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		planner: planner,
		logger:  logger,
	}
}

// RegisterRoutes mounts the query endpoint. limiter is optional; when
// nil the endpoint runs unthrottled.
func (h *QueryHandler) RegisterRoutes(router *gin.RouterGroup, limiter gin.HandlerFunc) {
	if limiter != nil {
		router.POST("/query", limiter, h.Query)
		return
	}
	router.POST("/query", h.Query)
}

// Query interprets the free-text request and answers with the parsed
// query, matched recipes and the aggregated grocery list. An empty
// match is a success with empty collections.
func (h *QueryHandler) Query(c *gin.Context) {
	var req types.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.planner.Process(c.Request.Context(), req.Query)
	if err != nil {
		h.logger.Error("query processing failed", zap.Error(err))
		switch {
		case errors.Is(err, service.ErrInterpretation):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to interpret query"})
		case errors.Is(err, service.ErrAggregation):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build grocery list"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process query"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
