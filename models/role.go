package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Role is the canonical user role. The upstream API is inconsistent and may
// deliver roles either as strings ("Barber") or as numeric codes (1), so every
// ingestion path goes through NormalizeRole before any role check.
type Role string

const (
	RoleCustomer   Role = "Customer"
	RoleBarber     Role = "Barber"
	RoleSuperAdmin Role = "SuperAdmin"
)

// roleCodes maps the numeric role codes used by the backend enum.
var roleCodes = map[int]Role{
	0: RoleCustomer,
	1: RoleBarber,
	2: RoleSuperAdmin,
}

// NormalizeRole collapses a raw role value (string or numeric code) to the
// canonical Role. It is total and idempotent: unmapped values fall back to
// RoleCustomer, and normalizing a canonical Role returns it unchanged.
func NormalizeRole(raw any) Role {
	switch v := raw.(type) {
	case Role:
		return normalizeString(string(v))
	case string:
		return normalizeString(v)
	case int:
		if r, ok := roleCodes[v]; ok {
			return r
		}
	case float64:
		if r, ok := roleCodes[int(v)]; ok {
			return r
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			if r, ok := roleCodes[int(n)]; ok {
				return r
			}
		}
	}
	return RoleCustomer
}

func normalizeString(s string) Role {
	switch Role(s) {
	case RoleCustomer, RoleBarber, RoleSuperAdmin:
		return Role(s)
	}
	// Some backends serialise the numeric enum as a quoted string.
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if r, ok := roleCodes[n]; ok {
			return r
		}
	}
	return RoleCustomer
}

// UnmarshalJSON accepts both `"Barber"` and `1` on the wire.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*r = NormalizeRole(raw)
	return nil
}

// IsStaff reports whether the role can fulfil appointments.
func (r Role) IsStaff() bool {
	return r == RoleBarber || r == RoleSuperAdmin
}
