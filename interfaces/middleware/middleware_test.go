package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ytdl-simpel/interfaces/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(middleware.RequestIDKey))
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := newEngine(middleware.RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_Propagated(t *testing.T) {
	r := newEngine(middleware.RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRateLimit_RejectsWhenBucketEmpty(t *testing.T) {
	r := newEngine(middleware.RateLimit(0.001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_DisabledForZeroRate(t *testing.T) {
	r := newEngine(middleware.RateLimit(0, 0))

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAccessLog_PassesThrough(t *testing.T) {
	r := newEngine(middleware.RequestID(), middleware.AccessLog())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}
