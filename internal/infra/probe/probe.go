// Package probe periodically checks that the village API answers and keeps
// the result for the readiness endpoint and the upstream_up gauge.
//
// Usage:
//
//	p := probe.New(villagesAPI, 5*time.Second, logger)
//	if err := p.Start("@every 1m"); err != nil { ... }
//	defer p.Stop(ctx)
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"butuhkidul/internal/observability/metrics"
	"butuhkidul/internal/repository"
)

// ErrNotRun is reported by Status before the first check completes.
var ErrNotRun = errors.New("upstream probe has not run yet")

// Status is the outcome of the most recent check.
type Status struct {
	Ready     bool          `json:"ready"`
	LastRun   time.Time     `json:"last_run"`
	Latency   time.Duration `json:"latency_ns"`
	LastError string        `json:"last_error,omitempty"`
}

// Probe runs an upstream check on a cron schedule.
//
// Thread safety: all methods are safe for concurrent use.
type Probe struct {
	villages repository.VillageRepository
	timeout  time.Duration
	logger   *slog.Logger

	ready atomic.Bool

	mu     sync.RWMutex
	status Status
	cron   *cron.Cron
}

// New creates a Probe that lists villages with the given per-check timeout.
func New(villages repository.VillageRepository, timeout time.Duration, logger *slog.Logger) *Probe {
	if logger == nil {
		logger = slog.Default()
	}
	return &Probe{
		villages: villages,
		timeout:  timeout,
		logger:   logger,
		status:   Status{LastError: ErrNotRun.Error()},
	}
}

// Check runs one probe now and records the result.
func (p *Probe) Check(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := p.villages.List(ctx)
	if err == nil && (resp == nil || resp.Data == nil) {
		err = errors.New("village listing has no data")
	}
	latency := time.Since(start)

	st := Status{Ready: err == nil, LastRun: start, Latency: latency}
	if err != nil {
		st.LastError = err.Error()
	}

	p.mu.Lock()
	p.status = st
	p.mu.Unlock()

	wasReady := p.ready.Swap(st.Ready)
	metrics.RecordProbe(st.Ready)

	switch {
	case err != nil && wasReady:
		p.logger.Warn("upstream became unavailable",
			slog.Duration("latency", latency),
			slog.Any("error", err))
	case err != nil:
		p.logger.Debug("upstream still unavailable", slog.Any("error", err))
	case !wasReady:
		p.logger.Info("upstream is available", slog.Duration("latency", latency))
	}

	if err != nil {
		return fmt.Errorf("upstream probe: %w", err)
	}
	return nil
}

// Start runs a first check synchronously and then schedules further checks.
// Start must be called at most once.
func (p *Probe) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		_ = p.Check(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule upstream probe: %w", err)
	}

	_ = p.Check(context.Background())

	p.mu.Lock()
	p.cron = c
	p.mu.Unlock()
	c.Start()

	p.logger.Info("upstream probe started", slog.String("schedule", schedule))
	return nil
}

// Stop stops scheduling and waits for a running check until ctx is done.
func (p *Probe) Stop(ctx context.Context) error {
	p.mu.RLock()
	c := p.cron
	p.mu.RUnlock()
	if c == nil {
		return nil
	}

	select {
	case <-c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether the latest check succeeded.
func (p *Probe) Ready() bool {
	return p.ready.Load()
}

// Status returns the latest check result.
func (p *Probe) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}
