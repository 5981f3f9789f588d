package organization_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/usecase/organization"
)

/* ───────── フィクスチャ ───────── */

func fixture() ([]entity.Unit, []entity.UnitMember) {
	units := []entity.Unit{
		{ID: "u1", Name: "Youth Group"},
		{ID: "u2", Name: "Empty Board"},
	}
	members := []entity.UnitMember{
		{ID: "m1", Name: "Jane Doe", Position: "Chair", UnitID: "u1"},
		{ID: "m2", Name: "John Roe", Position: "Secretary", UnitID: "u1"},
	}
	return units, members
}

/* ───────── テストケース ───────── */

func TestResolve_Member(t *testing.T) {
	units, members := fixture()

	got, err := organization.Resolve("jane-doe", units, members)
	require.NoError(t, err)

	want := &organization.Resolution{
		Member:              members[0],
		Organization:        units[0],
		OrganizationMembers: []entity.UnitMember{members[1]},
		Slug:                "jane-doe",
		Type:                organization.ViewMember,
		Candidates:          1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Organization(t *testing.T) {
	units, members := fixture()

	got, err := organization.Resolve("youth-group", units, members)
	require.NoError(t, err)

	want := &organization.Resolution{
		Member:              members[0],
		Organization:        units[0],
		OrganizationMembers: []entity.UnitMember{members[1]},
		Slug:                "youth-group",
		Type:                organization.ViewOrganization,
		Candidates:          1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_SingleMemberHasNoOthers(t *testing.T) {
	units := []entity.Unit{{ID: "u1", Name: "Solo"}}
	members := []entity.UnitMember{{ID: "m1", Name: "Only One", UnitID: "u1"}}

	for _, slug := range []string{"only-one", "solo"} {
		got, err := organization.Resolve(slug, units, members)
		require.NoError(t, err, slug)
		assert.NotNil(t, got.OrganizationMembers, slug)
		assert.Empty(t, got.OrganizationMembers, slug)
	}
}

func TestResolve_MemberWinsOverOrganization(t *testing.T) {
	units := []entity.Unit{{ID: "u1", Name: "Budi"}}
	members := []entity.UnitMember{{ID: "m1", Name: "Budi", UnitID: "u1"}}

	got, err := organization.Resolve("budi", units, members)
	require.NoError(t, err)
	assert.Equal(t, organization.ViewMember, got.Type)
}

func TestResolve_CollisionFirstMatchWins(t *testing.T) {
	units := []entity.Unit{{ID: "u1", Name: "RT 01"}, {ID: "u2", Name: "RT 02"}}
	members := []entity.UnitMember{
		{ID: "m1", Name: "Siti", UnitID: "u1"},
		{ID: "m2", Name: "SITI", UnitID: "u2"},
	}

	got, err := organization.Resolve("siti", units, members)
	require.NoError(t, err)
	assert.Equal(t, "m1", got.Member.ID)
	assert.Equal(t, "u1", got.Organization.ID)
	assert.Equal(t, 2, got.Candidates)
}

func TestResolve_Errors(t *testing.T) {
	units, members := fixture()

	tests := []struct {
		name    string
		slug    string
		units   []entity.Unit
		members []entity.UnitMember
		wantErr error
	}{
		{
			name:    "unknown slug",
			slug:    "nobody",
			units:   units,
			members: members,
			wantErr: organization.ErrNotFound,
		},
		{
			name:    "organization without members",
			slug:    "empty-board",
			units:   units,
			members: members,
			wantErr: organization.ErrNoMembers,
		},
		{
			name:  "member of unknown unit",
			slug:  "ghost",
			units: units,
			members: []entity.UnitMember{
				{ID: "m9", Name: "Ghost", UnitID: "u404"},
			},
			wantErr: organization.ErrOrganizationNotFoundForMember,
		},
		{
			name:    "empty inputs",
			slug:    "jane-doe",
			wantErr: organization.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := organization.Resolve(tt.slug, tt.units, tt.members)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
