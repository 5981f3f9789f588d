// Package respond writes JSON responses and turns errors into sanitized
// {"error": "..."} bodies.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// internalMessage is returned for every error that may not be shown as-is.
const internalMessage = "internal server error"

// JSON writes v as JSON with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes err's message verbatim. Use SafeError for errors whose text
// was not written for visitors.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeFragments mark messages that describe the request rather than the
// server and may be shown to the client.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"cannot be",
}

// SafeError writes err for 4xx codes when its message looks like a request
// problem. 5xx codes and anything else get "internal server error" and the
// sanitized cause is logged.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if code < http.StatusInternalServerError && isSafeMessage(msg) {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": internalMessage})
}

func isSafeMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, frag := range safeFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// AppError is an error that carries the message shown to the client.
type AppError struct {
	UserMsg string // shown to the client
	Err     error  // logged, never shown
	Code    int    // HTTP status code
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// WriteError writes an *AppError with its own code and user message and
// logs the cause of server errors. Other errors fall back to SafeError with
// the given code.
func WriteError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		SafeError(w, code, err)
		return
	}

	if appErr.Err != nil && appErr.Code >= http.StatusInternalServerError {
		slog.Default().Error("application error",
			slog.String("status", http.StatusText(appErr.Code)),
			slog.Int("code", appErr.Code),
			slog.String("user_message", appErr.UserMsg),
			slog.String("error", SanitizeError(appErr.Err)))
	}
	JSON(w, appErr.Code, map[string]string{"error": appErr.UserMsg})
}
