package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"resume-collector-backend/internal/delivery/http/middleware"
	"resume-collector-backend/internal/delivery/http/response"
	"resume-collector-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func do(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, response.RequestID(c))
	})

	t.Run("Should generate an id when none is sent", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/", nil)
		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 26)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("Should reuse an incoming id", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/", http.Header{middleware.RequestIDHeader: {"trace-123"}})
		assert.Equal(t, "trace-123", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "trace-123", rec.Body.String())
	})

	t.Run("Should replace an oversized incoming id", func(t *testing.T) {
		long := strings.Repeat("a", 65)
		rec := do(r, http.MethodGet, "/", http.Header{middleware.RequestIDHeader: {long}})
		assert.NotEqual(t, long, rec.Header().Get(middleware.RequestIDHeader))
		assert.Len(t, rec.Header().Get(middleware.RequestIDHeader), 26)
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		c.Error(apperror.Validation([]string{"full_name: field required", "dob: field required"}))
	})
	r.GET("/plain", func(c *gin.Context) {
		c.Error(errors.New("db exploded: secret dsn"))
	})
	r.GET("/internal", func(c *gin.Context) {
		c.Error(apperror.Internal(errors.New("disk full")))
	})
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
		c.Error(apperror.NotFound("ignored"))
	})

	t.Run("Should render app errors with kind and details", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/validation", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "full_name: field required", body["message"])
		assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), body["request_id"])
		detail := body["error"].(map[string]interface{})
		assert.Equal(t, "ValidationError", detail["kind"])
		assert.Len(t, detail["details"], 2)
	})

	for _, path := range []string{"/plain", "/internal"} {
		t.Run("Should hide internals on "+path, func(t *testing.T) {
			rec := do(r, http.MethodGet, path, nil)
			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), `"kind":"Internal"`)
			assert.NotContains(t, rec.Body.String(), "secret")
			assert.NotContains(t, rec.Body.String(), "disk full")
		})
	}

	t.Run("Should leave a written response alone", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/written", nil)
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	newRouter := func(cfg middleware.RateLimitConfig) *gin.Engine {
		r := gin.New()
		r.Use(middleware.RateLimitMiddleware(cfg))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Should reject requests past the limit", func(t *testing.T) {
		r := newRouter(middleware.RateLimitConfig{
			Limit:     2,
			Window:    time.Minute,
			KeyPrefix: "test:limit:",
		})

		rec := do(r, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", nil).Code)

		rec = do(r, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("Should count keys separately", func(t *testing.T) {
		r := newRouter(middleware.RateLimitConfig{
			Limit:     1,
			Window:    time.Minute,
			KeyPrefix: "test:keys:",
			KeyFunc:   func(c *gin.Context) string { return c.GetHeader("X-Client") },
		})

		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", http.Header{"X-Client": {"a"}}).Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", http.Header{"X-Client": {"b"}}).Code)
		assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/", http.Header{"X-Client": {"a"}}).Code)
	})

	t.Run("Should reset after the window", func(t *testing.T) {
		r := newRouter(middleware.RateLimitConfig{
			Limit:     1,
			Window:    50 * time.Millisecond,
			KeyPrefix: "test:window:",
		})

		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", nil).Code)
		assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/", nil).Code)
		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", nil).Code)
	})

	t.Run("Should pass everything through when disabled", func(t *testing.T) {
		r := newRouter(middleware.GlobalRateLimitConfig(0, time.Minute))
		for i := 0; i < 5; i++ {
			rec := do(r, http.MethodGet, "/", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
		}
	})
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware("https://app.example.com", true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := do(r, http.MethodOptions, "/", http.Header{"Origin": {"https://app.example.com"}})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(r, http.MethodOptions, "/", http.Header{"Origin": {"http://localhost:3000"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'none'")
}
