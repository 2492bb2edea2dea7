package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRouter(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "ok"}) })
	router.GET("/missing", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "missing"}) })
	router.GET("/boom", func(c *gin.Context) { c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"}) })
	return router
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		status  int
		wantLvl string
	}{
		{name: "success logs at info", path: "/ok", status: http.StatusOK, wantLvl: "info"},
		{name: "client error logs at warn", path: "/missing", status: http.StatusNotFound, wantLvl: "warn"},
		{name: "server error logs at error", path: "/boom", status: http.StatusInternalServerError, wantLvl: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			router := loggedRouter(zap.New(core))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			require.Equal(t, 1, logs.Len())

			entry := logs.All()[0]
			assert.Equal(t, tt.wantLvl, entry.Level.String())

			fields := entry.ContextMap()
			assert.Equal(t, "GET", fields["method"])
			assert.Equal(t, tt.path, fields["path"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Contains(t, fields, "duration")
			assert.Contains(t, fields, "client_ip")
		})
	}
}
