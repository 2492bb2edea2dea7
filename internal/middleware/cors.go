package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows cross-origin requests from any origin. The API is open
// and unauthenticated, so there are no credentials to protect.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Accept", "Origin"},
		MaxAge:          12 * time.Hour,
	})
}
