package villageapi

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"butuhkidul/pkg/config"
)

// DefaultBaseURL is the production village API origin.
const DefaultBaseURL = "https://api.butuhkidul.my.id"

// Config holds the settings of the village API client.
type Config struct {
	// BaseURL is the API origin every endpoint path is appended to.
	// Default: https://api.butuhkidul.my.id
	BaseURL string

	// Timeout bounds a whole request. Zero disables the client-side timeout
	// so that only the caller's context and the transport limit a request.
	// Default: 0
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "ButuhKidulWeb/1.0",
	}
}

// LoadConfigFromEnv reads API_BASE_URL, UPSTREAM_TIMEOUT and
// UPSTREAM_USER_AGENT on top of DefaultConfig and validates the result.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.BaseURL = config.GetEnvString("API_BASE_URL", cfg.BaseURL)
	cfg.Timeout = config.GetEnvDuration("UPSTREAM_TIMEOUT", cfg.Timeout)
	cfg.UserAgent = config.GetEnvString("UPSTREAM_USER_AGENT", cfg.UserAgent)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the base URL is an absolute http(s) origin and the
// timeout is not negative.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL must have a host")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %v", c.Timeout)
	}
	return nil
}
