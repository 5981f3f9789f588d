// Package config loads the service configuration: process settings from
// environment variables and site metadata from YAML.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	pkgconfig "butuhkidul/pkg/config"
)

// AppConfig holds process-level settings for the web server.
type AppConfig struct {
	// HTTPAddr is the listen address. Default: ":8080"
	HTTPAddr string

	// Version is reported by /health. Default: "dev"
	Version string

	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration

	// RequestTimeout bounds a single page request including its upstream
	// calls. Default: 15s
	RequestTimeout time.Duration

	// RateLimit configures the per-client request limiter.
	RateLimit RateLimitConfig

	// Probe configures the scheduled upstream readiness probe.
	Probe ProbeConfig

	// SiteConfigPath points to a YAML file overriding the embedded site
	// metadata. Empty means use the embedded default.
	SiteConfigPath string

	// TraceSampleRatio is the fraction of root spans sampled. Default: 1.0
	TraceSampleRatio float64
}

// RateLimitConfig holds token bucket settings applied per client IP.
type RateLimitConfig struct {
	Enabled bool
	// RPS is the sustained request rate. Default: 10
	RPS float64
	// Burst is the bucket size. Default: 20
	Burst int
	// CleanupInterval is how often idle client buckets are dropped. Default: 5m
	CleanupInterval time.Duration
}

// ProbeConfig holds upstream probe settings.
type ProbeConfig struct {
	// Schedule is a cron spec or descriptor. Default: "@every 1m"
	Schedule string
	// Timeout bounds a single probe request. Default: 5s
	Timeout time.Duration
}

// LoadAppConfig reads AppConfig from the environment and validates it.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		HTTPAddr:        pkgconfig.GetEnvString("HTTP_ADDR", ":8080"),
		Version:         pkgconfig.GetEnvString("VERSION", "dev"),
		ShutdownTimeout: pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RequestTimeout:  pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		RateLimit: RateLimitConfig{
			Enabled:         pkgconfig.GetEnvBool("RATE_LIMIT_ENABLED", true),
			RPS:             pkgconfig.GetEnvFloat("RATE_LIMIT_RPS", 10),
			Burst:           pkgconfig.GetEnvInt("RATE_LIMIT_BURST", 20),
			CleanupInterval: pkgconfig.GetEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		},
		Probe: ProbeConfig{
			Schedule: pkgconfig.GetEnvString("PROBE_SCHEDULE", "@every 1m"),
			Timeout:  pkgconfig.GetEnvDuration("PROBE_TIMEOUT", 5*time.Second),
		},
		SiteConfigPath:   pkgconfig.GetEnvString("SITE_CONFIG_PATH", ""),
		TraceSampleRatio: pkgconfig.GetEnvFloat("TRACE_SAMPLE_RATIO", 1.0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness. All problems are reported.
func (c *AppConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.HTTPAddr) == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must be positive"))
	}
	if c.RateLimit.Enabled {
		if err := pkgconfig.ValidatePositive("RATE_LIMIT_RPS", c.RateLimit.RPS); err != nil {
			errs = append(errs, err)
		}
		if err := pkgconfig.ValidatePositive("RATE_LIMIT_BURST", c.RateLimit.Burst); err != nil {
			errs = append(errs, err)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			errs = append(errs, errors.New("RATE_LIMIT_CLEANUP_INTERVAL must be positive"))
		}
	}
	if err := pkgconfig.ValidateCronSchedule(c.Probe.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("PROBE_SCHEDULE: %w", err))
	}
	if c.Probe.Timeout <= 0 {
		errs = append(errs, errors.New("PROBE_TIMEOUT must be positive"))
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		errs = append(errs, fmt.Errorf("TRACE_SAMPLE_RATIO must be between 0 and 1, got %v", c.TraceSampleRatio))
	}

	return errors.Join(errs...)
}
