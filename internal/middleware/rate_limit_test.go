// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func serveRateLimited(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reactions", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func postFrom(r *gin.Engine, addr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reactions", nil)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	r := serveRateLimited(NewRateLimiter(rate.Every(time.Hour), 2))

	assert.Equal(t, http.StatusOK, postFrom(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, postFrom(r, "10.0.0.1:1234").Code)

	w := postFrom(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limited")
}

func TestRateLimiterTracksVisitorsPerIP(t *testing.T) {
	r := serveRateLimited(NewRateLimiter(rate.Every(time.Hour), 1))

	assert.Equal(t, http.StatusOK, postFrom(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, postFrom(r, "10.0.0.1:1234").Code)

	// a different visitor still has its own budget
	assert.Equal(t, http.StatusOK, postFrom(r, "10.0.0.2:1234").Code)
}
