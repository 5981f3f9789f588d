package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Unit is an organizational body of the village, e.g. a committee or a
// youth group.
type Unit struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	CreatedBy   string  `json:"created_by"`
	ModifiedAt  *string `json:"modified_at,omitempty"`
	ModifiedBy  *string `json:"modified_by,omitempty"`
}

// UnitMember is a person holding a position in a Unit.
type UnitMember struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	UnitID     string  `json:"unit_id"`
	UnitName   string  `json:"unit_name"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
	CreatedBy  string  `json:"created_by"`
	ModifiedAt *string `json:"modified_at,omitempty"`
	ModifiedBy *string `json:"modified_by,omitempty"`
}

// UnitsData is the payload of GET /v1/units.
// It decodes both {"units": [...]} and a bare array.
type UnitsData struct {
	Units []Unit `json:"units"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *UnitsData) UnmarshalJSON(b []byte) error {
	units, err := decodeList[Unit](b, "units")
	if err != nil {
		return err
	}
	d.Units = units
	return nil
}

// UnitMembersData is the payload of the unit member endpoints.
// It decodes both {"unit_members": [...]} and a bare array.
type UnitMembersData struct {
	UnitMembers []UnitMember `json:"unit_members"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *UnitMembersData) UnmarshalJSON(b []byte) error {
	members, err := decodeList[UnitMember](b, "unit_members")
	if err != nil {
		return err
	}
	d.UnitMembers = members
	return nil
}

// UnitsResponse is the envelope returned by GET /v1/units.
type UnitsResponse = Envelope[UnitsData]

// UnitMembersResponse is the envelope returned by the unit member endpoints.
type UnitMembersResponse = Envelope[UnitMembersData]

// decodeList accepts either a JSON array of T or an object whose key field
// holds that array.
func decodeList[T any](b []byte, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, err
		}
		raw := bytes.TrimSpace(obj[key])
		if len(raw) == 0 || raw[0] != '[' {
			return nil, fmt.Errorf("%w: %q is not a list", ErrUnexpectedShape, key)
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: payload is neither a list nor an object", ErrUnexpectedShape)
	}
}
