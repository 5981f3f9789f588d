// Package organization maps human-readable URL slugs to village units
// (organizations) and their members.
package organization

import "errors"

// Sentinel errors for slug resolution.
var (
	// ErrNotFound indicates that the slug matches neither a member nor an organization.
	ErrNotFound = errors.New("member or organization not found")

	// ErrOrganizationNotFoundForMember indicates that a member references a
	// unit ID that is missing from the unit listing.
	ErrOrganizationNotFoundForMember = errors.New("organization not found for this member")

	// ErrNoMembers indicates that the organization matched but has no members to display.
	ErrNoMembers = errors.New("no members found in this organization")
)
