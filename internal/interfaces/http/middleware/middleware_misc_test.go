package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		id := c.GetString(RequestIDKey)
		assert.NotEmpty(t, id)
		// Mirrored into the request context for the logger
		assert.Equal(t, id, c.Request.Context().Value("request_id"))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_HonorsIncomingHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", w.Header().Get("X-Request-ID"))
}

func TestMetricsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/v1/plans/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", MetricsHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/plans/abc", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	// The route template, not the raw path, is the label
	assert.Contains(t, w.Body.String(), "finroute_http_requests_total")
	assert.Contains(t, w.Body.String(), "/api/v1/plans/:id")
	assert.NotContains(t, w.Body.String(), "/api/v1/plans/abc")
}
