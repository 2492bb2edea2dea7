package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "NutriQuery API is running",
		"version": "v1.0.0",
	})
}

// Root describes the service for clients probing the bare host.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "NutriQuery API",
		"version": "v1.0.0",
		"health":  "/health",
	})
}
