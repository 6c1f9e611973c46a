package booking

import "barberbook/models"

// EligibleStaff filters the roster down to the staff members allowed to
// fulfil the given service. VIP service types are restricted to super admins;
// everything else may be fulfilled by any barber or super admin. An empty
// eligible set is reported as ErrNoEligibleStaff so the staff-selection step
// can show an explicit "no staff available" state.
func EligibleStaff(svc models.Service, roster []models.User) ([]models.User, error) {
	var eligible []models.User
	for _, member := range roster {
		role := models.NormalizeRole(member.Role)
		if svc.ServiceType.IsVIP() {
			if role == models.RoleSuperAdmin {
				eligible = append(eligible, member)
			}
			continue
		}
		if role.IsStaff() {
			eligible = append(eligible, member)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligibleStaff
	}
	return eligible, nil
}
