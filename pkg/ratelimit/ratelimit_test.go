package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestAllow_BurstThenRefill(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(Config{PerMinute: 60, Burst: 2})
	l.now = func() time.Time { return now }

	req.True(l.Allow("1.2.3.4"))
	req.True(l.Allow("1.2.3.4"))
	req.False(l.Allow("1.2.3.4"))
	req.True(l.Allow("5.6.7.8"), "buckets are per key")

	now = now.Add(time.Second)
	req.True(l.Allow("1.2.3.4"))
	req.False(l.Allow("1.2.3.4"))
}

func TestSweep_DropsIdleVisitors(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(Config{PerMinute: 60, Burst: 1, IdleTTL: time.Minute})
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(2 * time.Minute)
	l.Allow("b")

	l.mu.Lock()
	defer l.mu.Unlock()
	req.NotContains(l.visitors, "a")
	req.Contains(l.visitors, "b")
}

func TestMiddleware(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)
	l := New(Config{PerMinute: 1, Burst: 1})

	r := gin.New()
	r.POST("/login", l.Middleware(false), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		hr := httptest.NewRequest(http.MethodPost, "/login", nil)
		hr.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, hr)
		return w
	}

	req.Equal(http.StatusOK, do().Code)
	w := do()
	req.Equal(http.StatusTooManyRequests, w.Code)
	req.JSONEq(`{"success":false,"message":"Too many requests"}`, w.Body.String())
}
