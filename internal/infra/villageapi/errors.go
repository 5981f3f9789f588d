// Package villageapi is the typed client of the remote village REST API.
// It builds requests against a configured origin, decodes the JSON envelope
// of every endpoint and normalizes non-2xx responses into *APIError.
// Failures are never retried or swallowed; callers decide how to degrade.
package villageapi

import (
	"errors"
	"fmt"
	"net/http"

	"butuhkidul/internal/domain/entity"
)

// APIError is returned for every non-2xx response of the village API.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is the "error" field of the body, or "HTTP <code>: <text>".
	Message string
	// Body is the parsed error body; empty when the body was not a JSON object.
	Body map[string]any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Is makes a 404 response match entity.ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == entity.ErrNotFound && e.Status == http.StatusNotFound
}

// newAPIError builds an APIError from a status code and an already parsed body.
func newAPIError(status int, body map[string]any) *APIError {
	if body == nil {
		body = map[string]any{}
	}
	msg, _ := body["error"].(string)
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return &APIError{Status: status, Message: msg, Body: body}
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
