package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrInvalidParams is wrapped by every parsing and validation error.
var ErrInvalidParams = errors.New("invalid pagination parameters")

// Params represents pagination query parameters.
type Params struct {
	Page  int // 1-based page number
	Limit int // items per page
}

// ParseQuery reads page and limit from a query string. Missing values take
// the config defaults; malformed or out-of-range values are an error.
func ParseQuery(q url.Values, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := q.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("%w: page must be a positive integer", ErrInvalidParams)
		}
		params.Page = page
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidParams, config.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}

// Validate checks p against the configuration.
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be a positive integer", ErrInvalidParams)
	}
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidParams, config.MaxLimit)
	}
	return nil
}

// WithDefaults fills zero or negative fields from config and caps Limit.
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	return p
}
