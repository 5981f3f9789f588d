package middleware

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"butuhkidul/internal/handler/http/respond"
	"butuhkidul/internal/observability/metrics"
)

// errRateLimited is the body of 429 responses.
var errRateLimited = errors.New("rate limit exceeded, must be retried later")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter is a token bucket per client IP.
//
// Thread safety: IPRateLimiter is safe for concurrent use.
type IPRateLimiter struct {
	rps       rate.Limit
	burst     int
	extractor IPExtractor
	now       func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewIPRateLimiter allows rps sustained requests and bursts of burst per
// client. A nil extractor uses RemoteAddr.
func NewIPRateLimiter(rps float64, burst int, extractor IPExtractor) *IPRateLimiter {
	if extractor == nil {
		extractor = &RemoteAddrExtractor{}
	}
	return &IPRateLimiter{
		rps:       rate.Limit(rps),
		burst:     burst,
		extractor: extractor,
		now:       time.Now,
		visitors:  make(map[string]*visitor),
	}
}

// Allow consumes a token for ip. When the bucket is empty it returns false
// and how long until the next token.
func (l *IPRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	r := v.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Second
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Cleanup drops clients not seen for maxIdle and returns how many remain.
func (l *IPRateLimiter) Cleanup(maxIdle time.Duration) int {
	cutoff := l.now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
		}
	}
	return len(l.visitors)
}

// Len returns the number of tracked clients.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Middleware rejects requests over the limit with 429 and Retry-After.
// Requests whose client IP cannot be determined are let through.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := l.extractor.ExtractIP(r)
		if err != nil {
			slog.Debug("rate limit skipped, client IP unknown",
				slog.String("remote_addr", r.RemoteAddr),
				slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}

		ok, retryAfter := l.Allow(ip)
		if !ok {
			metrics.RecordRateLimited()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			respond.SafeError(w, http.StatusTooManyRequests, errRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}
