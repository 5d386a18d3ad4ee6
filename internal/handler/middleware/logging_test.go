//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-clean-service/internal/handler/middleware"
	"library-clean-service/internal/pkg/config"
)

func newTestRouter(t *testing.T) (*gin.Engine, *middleware.Logger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeFormat: "2006-01-02T15:04:05Z"})
	engine := gin.New()
	engine.Use(logger.LoggingMiddleware())
	return engine, logger
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("assigns a request id to the context", func(t *testing.T) {
		engine, _ := newTestRouter(t)

		var captured string
		engine.GET("/ping", func(c *gin.Context) {
			captured = middleware.GetRequestID(c)
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Regexp(t, regexp.MustCompile(`^\d{14}-[0-9a-f]{8}$`), captured)
	})

	t.Run("request ids are unique per request", func(t *testing.T) {
		engine, _ := newTestRouter(t)

		seen := map[string]bool{}
		engine.GET("/ping", func(c *gin.Context) {
			seen[middleware.GetRequestID(c)] = true
			c.Status(http.StatusOK)
		})

		for range 3 {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		}
		assert.Len(t, seen, 3)
	})

	t.Run("GetRequestID is empty outside the middleware", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, middleware.GetRequestID(c))
	})

	t.Run("exposes the slog logger it was built with", func(t *testing.T) {
		_, logger := newTestRouter(t)
		require.NotNil(t, logger.GetSlogLogger())
	})
}
