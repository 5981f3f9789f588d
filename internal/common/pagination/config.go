// Package pagination parses page query parameters and describes paginated
// listings served by the village API.
package pagination

import (
	"errors"
	"fmt"

	pkgconfig "butuhkidul/pkg/config"
)

// Config holds pagination settings for a listing page.
type Config struct {
	DefaultPage  int // first page, 1
	DefaultLimit int // items per page when the request does not say
	MaxLimit     int // upper bound for a requested limit
}

// DefaultConfig returns the settings of the public article listing:
// page=1, limit=9, max=50.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 9,
		MaxLimit:     50,
	}
}

// Validate reports every invalid field. DefaultLimit may not exceed
// MaxLimit, otherwise a request without a limit would be rejected.
func (c Config) Validate() error {
	var errs []error
	if err := pkgconfig.ValidatePositive("pagination default page", c.DefaultPage); err != nil {
		errs = append(errs, err)
	}
	if err := pkgconfig.ValidatePositive("PAGINATION_DEFAULT_LIMIT", c.DefaultLimit); err != nil {
		errs = append(errs, err)
	}
	if err := pkgconfig.ValidatePositive("PAGINATION_MAX_LIMIT", c.MaxLimit); err != nil {
		errs = append(errs, err)
	}
	if c.DefaultLimit > c.MaxLimit {
		errs = append(errs, fmt.Errorf("PAGINATION_DEFAULT_LIMIT (%d) must not exceed PAGINATION_MAX_LIMIT (%d)", c.DefaultLimit, c.MaxLimit))
	}
	return errors.Join(errs...)
}

// LoadFromEnv reads PAGINATION_DEFAULT_LIMIT and PAGINATION_MAX_LIMIT,
// falling back to DefaultConfig, and validates the result.
func LoadFromEnv() (Config, error) {
	def := DefaultConfig()
	cfg := Config{
		DefaultPage:  def.DefaultPage,
		DefaultLimit: pkgconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     pkgconfig.GetEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid pagination config: %w", err)
	}
	return cfg, nil
}
