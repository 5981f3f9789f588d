package villageapi

import (
	"context"
	"net/url"

	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/repository"
)

// UnitsAPI implements repository.UnitRepository against /v1/units and
// /v1/units-members.
type UnitsAPI struct {
	Client *Client
}

var _ repository.UnitRepository = (*UnitsAPI)(nil)

// List calls GET /v1/units.
func (u *UnitsAPI) List(ctx context.Context, params repository.UnitListParams) (*entity.UnitsResponse, error) {
	q := &query{}
	q.addString("name", params.Name)
	q.addString("description", params.Description)

	var out entity.UnitsResponse
	if err := u.Client.get(ctx, "units.list", withQuery("/v1/units", q), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Members calls GET /v1/units-members.
func (u *UnitsAPI) Members(ctx context.Context, params repository.MemberListParams) (*entity.UnitMembersResponse, error) {
	var out entity.UnitMembersResponse
	if err := u.Client.get(ctx, "units.members", withQuery("/v1/units-members", memberQuery(params)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MembersByUnitID calls GET /v1/units/{unitID}/members.
func (u *UnitsAPI) MembersByUnitID(ctx context.Context, unitID string, params repository.MemberListParams) (*entity.UnitMembersResponse, error) {
	path := "/v1/units/" + url.PathEscape(unitID) + "/members"

	var out entity.UnitMembersResponse
	if err := u.Client.get(ctx, "units.members_by_unit", withQuery(path, memberQuery(params)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func memberQuery(params repository.MemberListParams) *query {
	q := &query{}
	q.addString("unit", params.Unit)
	q.addString("name", params.Name)
	q.addString("position", params.Position)
	q.addInt("limit", params.Limit)
	return q
}
