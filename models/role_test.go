package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want Role
	}{
		{"canonical string", "Barber", RoleBarber},
		{"canonical role", RoleSuperAdmin, RoleSuperAdmin},
		{"numeric zero", 0, RoleCustomer},
		{"numeric one", 1, RoleBarber},
		{"numeric two", 2, RoleSuperAdmin},
		{"float from json", float64(2), RoleSuperAdmin},
		{"quoted numeric", "1", RoleBarber},
		{"quoted numeric with spaces", " 2 ", RoleSuperAdmin},
		{"unmapped string", "Manager", RoleCustomer},
		{"unmapped code", 7, RoleCustomer},
		{"negative code", -1, RoleCustomer},
		{"empty string", "", RoleCustomer},
		{"nil", nil, RoleCustomer},
		{"unexpected type", struct{}{}, RoleCustomer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeRole(tc.raw))
		})
	}
}

func TestNormalizeRoleIdempotent(t *testing.T) {
	inputs := []any{"Barber", "SuperAdmin", "Customer", 0, 1, 2, "bogus", 42}
	for _, raw := range inputs {
		once := NormalizeRole(raw)
		assert.Equal(t, once, NormalizeRole(once), "normalizing %v twice diverged", raw)
	}
}

func TestRoleUnmarshalJSON(t *testing.T) {
	var u struct {
		Role Role `json:"role"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"role":"Barber"}`), &u))
	assert.Equal(t, RoleBarber, u.Role)

	require.NoError(t, json.Unmarshal([]byte(`{"role":2}`), &u))
	assert.Equal(t, RoleSuperAdmin, u.Role)

	require.NoError(t, json.Unmarshal([]byte(`{"role":"whatever"}`), &u))
	assert.Equal(t, RoleCustomer, u.Role)
}

func TestIsStaff(t *testing.T) {
	assert.False(t, RoleCustomer.IsStaff())
	assert.True(t, RoleBarber.IsStaff())
	assert.True(t, RoleSuperAdmin.IsStaff())
}
