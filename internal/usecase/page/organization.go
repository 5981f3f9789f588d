package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/repository"
	"butuhkidul/internal/usecase/organization"
)

// MembersLimit is the number of members fetched to resolve a slug.
const MembersLimit = 50

// Organization resolves slug to a member or an organization and returns the
// detail page data.
//
// Failures map to page errors: an empty slug is 400, a slug that resolves
// to nothing is 404, and missing or malformed upstream data is 500.
func (s *Service) Organization(ctx context.Context, slug string) (*organization.Resolution, error) {
	res, err := s.organization(ctx, slug)
	return res, s.finish(ctx, "organization", err)
}

func (s *Service) organization(ctx context.Context, slug string) (*organization.Resolution, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, newError(http.StatusBadRequest, msgInvalidSlug, nil)
	}

	units, err := s.UnitRepo.List(ctx, repository.UnitListParams{})
	if err != nil {
		return nil, upstreamError(err, msgInvalidOrganizations)
	}
	if units == nil || units.Data == nil {
		return nil, newError(http.StatusInternalServerError, msgLoadOrganizations, nil)
	}

	members, err := s.UnitRepo.Members(ctx, repository.MemberListParams{Limit: ptr(MembersLimit)})
	if err != nil {
		return nil, upstreamError(err, msgInvalidMembers)
	}
	if members == nil || members.Data == nil {
		return nil, newError(http.StatusInternalServerError, msgLoadMembers, nil)
	}

	res, err := organization.Resolve(slug, units.Data.Units, members.Data.UnitMembers)
	switch {
	case errors.Is(err, organization.ErrOrganizationNotFoundForMember):
		return nil, newError(http.StatusNotFound, msgOrganizationForMember, err)
	case errors.Is(err, organization.ErrNoMembers):
		return nil, newError(http.StatusNotFound, msgNoMembers, err)
	case errors.Is(err, organization.ErrNotFound):
		return nil, newError(http.StatusNotFound, fmt.Sprintf(msgMemberOrOrganizationFmt, slug), err)
	case err != nil:
		return nil, err
	}

	if res.Candidates > 1 {
		s.log(ctx).WarnContext(ctx, "slug matches several records, using the first",
			slog.String("slug", slug),
			slog.String("type", string(res.Type)),
			slog.Int("candidates", res.Candidates))
	}
	return res, nil
}

// upstreamError maps a repository failure: payloads of an unexpected shape
// get shapeMessage, everything else is an internal error.
func upstreamError(err error, shapeMessage string) error {
	if errors.Is(err, entity.ErrUnexpectedShape) {
		return newError(http.StatusInternalServerError, shapeMessage, err)
	}
	return newError(http.StatusInternalServerError, msgInternal, err)
}

// OrganizationsPage lists every organization with its members.
type OrganizationsPage struct {
	Organizations []OrganizationSummary `json:"organizations"`
}

// OrganizationSummary is one organization of the listing.
type OrganizationSummary struct {
	entity.Unit
	Slug    string       `json:"slug"`
	Members []MemberLink `json:"members"`
}

// MemberLink is a member with the slug of its detail page.
type MemberLink struct {
	entity.UnitMember
	Slug string `json:"slug"`
}

// Organizations loads all units and groups the members under them, in
// listing order. Members of unknown units are left out.
func (s *Service) Organizations(ctx context.Context) (*OrganizationsPage, error) {
	p, err := s.organizations(ctx)
	return p, s.finish(ctx, "organizations", err)
}

func (s *Service) organizations(ctx context.Context) (*OrganizationsPage, error) {
	units, err := s.UnitRepo.List(ctx, repository.UnitListParams{})
	if err != nil {
		return nil, upstreamError(err, msgInvalidOrganizations)
	}
	if units == nil || units.Data == nil {
		return nil, newError(http.StatusInternalServerError, msgLoadOrganizations, nil)
	}

	members, err := s.UnitRepo.Members(ctx, repository.MemberListParams{Limit: ptr(MembersLimit)})
	if err != nil {
		return nil, upstreamError(err, msgInvalidMembers)
	}
	if members == nil || members.Data == nil {
		return nil, newError(http.StatusInternalServerError, msgLoadMembers, nil)
	}

	byUnit := make(map[string][]MemberLink, len(units.Data.Units))
	for _, m := range members.Data.UnitMembers {
		byUnit[m.UnitID] = append(byUnit[m.UnitID], MemberLink{
			UnitMember: m,
			Slug:       organization.Slugify(m.Name),
		})
	}

	out := &OrganizationsPage{Organizations: make([]OrganizationSummary, 0, len(units.Data.Units))}
	for _, u := range units.Data.Units {
		links := byUnit[u.ID]
		if links == nil {
			links = []MemberLink{}
		}
		out.Organizations = append(out.Organizations, OrganizationSummary{
			Unit:    u,
			Slug:    organization.Slugify(u.Name),
			Members: links,
		})
	}
	return out, nil
}
