package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriquery/backend/internal/service"
)

// PlanHandler serves previously generated meal plans from the plan
// store. Its routes are only registered when Redis is configured.
type PlanHandler struct {
	plans  service.IPlanStore
	logger *zap.Logger
}

// NewPlanHandler creates a new PlanHandler instance.
func NewPlanHandler(plans service.IPlanStore, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		plans:  plans,
		logger: logger,
	}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	{
		plans.GET("/:id", h.GetPlan)
		plans.DELETE("/:id", h.DeletePlan)
	}
}

// GetPlan returns a stored plan by id, exactly as the original query
// response carried it.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	id := c.Param("id")

	result, err := h.plans.GetPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		h.logger.Error("failed to load plan", zap.String("plan_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plan"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	id := c.Param("id")

	if err := h.plans.DeletePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		h.logger.Error("failed to delete plan", zap.String("plan_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Plan deleted successfully",
		"id":      id,
	})
}
