package booking

import (
	"testing"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roster = []models.User{
	{ID: "b1", Role: models.RoleBarber},
	{ID: "b2", Role: models.RoleBarber},
	{ID: "owner", Role: models.RoleSuperAdmin},
	{ID: "c1", Role: models.RoleCustomer},
}

func staffIDs(staff []models.User) []string {
	ids := make([]string, 0, len(staff))
	for _, m := range staff {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestEligibleStaffRegularService(t *testing.T) {
	svc := models.Service{ServiceType: models.ServiceTypeRegular}

	eligible, err := EligibleStaff(svc, roster)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2", "owner"}, staffIDs(eligible))
}

func TestEligibleStaffVIPRestrictedToSuperAdmin(t *testing.T) {
	for _, st := range []models.ServiceType{models.ServiceTypeVIPRoom, models.ServiceTypeVIPCar} {
		svc := models.Service{ServiceType: st}

		eligible, err := EligibleStaff(svc, roster)
		require.NoError(t, err, "service type %s", st)
		assert.Equal(t, []string{"owner"}, staffIDs(eligible), "service type %s", st)
	}
}

func TestEligibleStaffEmptySetIsAnError(t *testing.T) {
	svc := models.Service{ServiceType: models.ServiceTypeVIPRoom}
	barbersOnly := []models.User{{ID: "b1", Role: models.RoleBarber}}

	_, err := EligibleStaff(svc, barbersOnly)
	assert.ErrorIs(t, err, ErrNoEligibleStaff)
}

func TestEligibleStaffNormalizesRawRoles(t *testing.T) {
	raw := []models.User{
		{ID: "b1", Role: "1"},
		{ID: "owner", Role: "2"},
	}
	svc := models.Service{ServiceType: models.ServiceTypeVIPCar}

	eligible, err := EligibleStaff(svc, raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner"}, staffIDs(eligible))
}
