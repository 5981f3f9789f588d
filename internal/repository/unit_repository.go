package repository

import (
	"context"

	"butuhkidul/internal/domain/entity"
)

// UnitListParams contains optional filters for listing units.
type UnitListParams struct {
	Name        *string
	Description *string
}

// MemberListParams contains optional filters for listing unit members.
type MemberListParams struct {
	Unit     *string
	Name     *string
	Position *string
	Limit    *int
}

// UnitRepository reads organizations and their members from the village API.
type UnitRepository interface {
	List(ctx context.Context, params UnitListParams) (*entity.UnitsResponse, error)
	Members(ctx context.Context, params MemberListParams) (*entity.UnitMembersResponse, error)
	MembersByUnitID(ctx context.Context, unitID string, params MemberListParams) (*entity.UnitMembersResponse, error)
}
