package page

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a loader failure that carries the HTTP status and the message
// shown to the visitor. Err keeps the underlying cause for logging.
type Error struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

// Messages shown to visitors.
const (
	msgInternal = "Internal server error"

	msgInvalidSlug             = "Invalid member slug"
	msgLoadOrganizations       = "Failed to load organizations"
	msgLoadMembers             = "Failed to load organization members"
	msgInvalidOrganizations    = "Invalid organizations data format"
	msgInvalidMembers          = "Invalid members data format"
	msgOrganizationForMember   = "Organization not found for this member"
	msgNoMembers               = "No members found in this organization"
	msgMemberOrOrganizationFmt = "Member or organization not found: %s"

	msgVillageFallback    = "Failed to load village data"
	msgArticlesFallback   = "Failed to load articles"
	msgVillageUnexpected  = "Unexpected error occurred while loading data"
	msgArticlesUnexpected = "Unexpected error occurred while loading articles"

	msgArticleNotFound = "Article not found"
	msgLoadArticle     = "Failed to load article"
	msgInvalidPage     = "Invalid page number"
	msgInvalidLimit    = "Invalid page size"
	msgLoadHistories   = "Failed to load village histories"
	msgLoadPopulation  = "Failed to load population data"
)

// AsError returns err as a *Error. Errors that already carry a page status
// are returned unchanged; anything else becomes a 500.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	return newError(http.StatusInternalServerError, msgInternal, err)
}
