package http

import (
	"context"
	"log/slog"
	"time"
)

// IdleCleaner forgets clients that have been idle longer than maxIdle and
// returns how many are still tracked.
type IdleCleaner interface {
	Cleanup(maxIdle time.Duration) int
}

// StartRateLimitCleanup runs limiter.Cleanup every interval until ctx is
// cancelled. It blocks; callers run it in a goroutine.
func StartRateLimitCleanup(ctx context.Context, limiter IdleCleaner, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started",
		slog.Duration("interval", interval),
		slog.Duration("max_idle", maxIdle))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped")
			return
		case <-ticker.C:
			remaining := limiter.Cleanup(maxIdle)
			slog.Debug("rate limit cleanup completed", slog.Int("active_clients", remaining))
		}
	}
}
