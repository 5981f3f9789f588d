package organization

import (
	"fmt"

	"butuhkidul/internal/domain/entity"
)

// ViewType tells the page whether a slug named a person or an organization.
type ViewType string

const (
	// ViewMember is returned when the slug matched a member's name.
	ViewMember ViewType = "member"
	// ViewOrganization is returned when the slug matched an organization's name.
	ViewOrganization ViewType = "organization"
)

// Resolution is the data the organization detail page renders.
type Resolution struct {
	// Member is the matched member, or the organization's first member.
	Member entity.UnitMember `json:"member"`
	// Organization is the unit the member belongs to.
	Organization entity.Unit `json:"organization"`
	// OrganizationMembers are the unit's other members, in listing order.
	OrganizationMembers []entity.UnitMember `json:"organization_members"`
	// Slug is the canonical slug of the matched name.
	Slug string `json:"slug"`
	// Type is ViewMember or ViewOrganization.
	Type ViewType `json:"type"`
	// Candidates is the number of records of the matched kind whose name
	// produced the same slug. The first one wins; values above 1 mean the
	// slug is ambiguous.
	Candidates int `json:"-"`
}

// Resolve finds what slug refers to.
//
// Members are searched first. A matching member is returned together with
// its organization and the organization's other members. Otherwise the
// organizations are searched; a matching organization is displayed through
// its first member, with the remaining members listed. In both cases the
// first record in listing order wins when several names share a slug.
//
// Errors: ErrOrganizationNotFoundForMember when a matched member's unit is
// missing, ErrNoMembers when a matched organization has no members, and
// ErrNotFound when nothing matches.
func Resolve(slug string, units []entity.Unit, members []entity.UnitMember) (*Resolution, error) {
	if idx, n := findMember(members, slug); idx >= 0 {
		member := members[idx]

		unit, ok := findUnitByID(units, member.UnitID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrOrganizationNotFoundForMember, member.UnitID)
		}

		others := make([]entity.UnitMember, 0)
		for _, m := range members {
			if m.UnitID == unit.ID && m.ID != member.ID {
				others = append(others, m)
			}
		}

		return &Resolution{
			Member:              member,
			Organization:        unit,
			OrganizationMembers: others,
			Slug:                Slugify(member.Name),
			Type:                ViewMember,
			Candidates:          n,
		}, nil
	}

	if idx, n := findUnit(units, slug); idx >= 0 {
		unit := units[idx]

		var unitMembers []entity.UnitMember
		for _, m := range members {
			if m.UnitID == unit.ID {
				unitMembers = append(unitMembers, m)
			}
		}
		if len(unitMembers) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMembers, unit.Name)
		}

		return &Resolution{
			Member:              unitMembers[0],
			Organization:        unit,
			OrganizationMembers: append(make([]entity.UnitMember, 0, len(unitMembers)-1), unitMembers[1:]...),
			Slug:                Slugify(unit.Name),
			Type:                ViewOrganization,
			Candidates:          n,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
}

// findMember returns the index of the first member whose name slugifies to
// slug (or -1) and how many members match in total.
func findMember(members []entity.UnitMember, slug string) (int, int) {
	first, count := -1, 0
	for i, m := range members {
		if Slugify(m.Name) == slug {
			if first < 0 {
				first = i
			}
			count++
		}
	}
	return first, count
}

// findUnit is findMember for organizations.
func findUnit(units []entity.Unit, slug string) (int, int) {
	first, count := -1, 0
	for i, u := range units {
		if Slugify(u.Name) == slug {
			if first < 0 {
				first = i
			}
			count++
		}
	}
	return first, count
}

func findUnitByID(units []entity.Unit, id string) (entity.Unit, bool) {
	for _, u := range units {
		if u.ID == id {
			return u, true
		}
	}
	return entity.Unit{}, false
}
