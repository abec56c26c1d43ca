package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songblog-backend/internal/shared/middleware"
)

func newRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	seen := new(string)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		*seen = c.GetString(middleware.RequestIDKey)
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func TestRequestID_Generated(t *testing.T) {
	r, seen := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, *seen)
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	r, seen := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", *seen)
}
