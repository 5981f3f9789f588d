package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butuhkidul/internal/observability/metrics"
)

// fakeClock は時間を手動で進めるためのテスト用時計
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(rps float64, burst int) (*IPRateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewIPRateLimiter(rps, burst, nil)
	l.now = clock.Now
	return l, clock
}

func TestIPRateLimiter_Allow(t *testing.T) {
	l, clock := newTestLimiter(1, 3)

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("10.0.0.1")
		assert.True(t, ok, "request %d within burst", i+1)
	}

	ok, retry := l.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Second, retry)

	// 別クライアントは独立したバケットを持つ
	ok, _ = l.Allow("10.0.0.2")
	assert.True(t, ok)

	clock.Advance(time.Second)
	ok, _ = l.Allow("10.0.0.1")
	assert.True(t, ok, "token refilled")
}

func TestIPRateLimiter_RejectedRequestDoesNotConsume(t *testing.T) {
	l, clock := newTestLimiter(1, 1)

	ok, _ := l.Allow("a")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		ok, _ = l.Allow("a")
		require.False(t, ok)
	}

	clock.Advance(time.Second)
	ok, _ = l.Allow("a")
	assert.True(t, ok)
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	l, clock := newTestLimiter(10, 10)

	l.Allow("old")
	clock.Advance(10 * time.Minute)
	l.Allow("fresh")

	remaining := l.Cleanup(5 * time.Minute)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, 1, l.Len())
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	l, _ := newTestLimiter(1, 2)
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(metrics.RateLimitRejectedTotal)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/pages/home", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			assert.Contains(t, rec.Body.String(), "rate limit exceeded")
		}
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RateLimitRejectedTotal))
}

func TestIPRateLimiter_Middleware_UnknownIPPassesThrough(t *testing.T) {
	l, _ := newTestLimiter(1, 1)
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "not-an-address"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Zero(t, l.Len())
}
