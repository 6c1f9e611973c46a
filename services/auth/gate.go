package auth

import (
	"net/url"

	"barberbook/models"
	"barberbook/utils"
)

// Decision is the settled outcome of a role-gate evaluation.
type Decision int

const (
	// DecisionLoading means the session has not settled yet. No redirect may
	// be issued from this state; redirecting mid-initialization causes
	// redirect flicker and loops.
	DecisionLoading Decision = iota
	// DecisionLogin redirects an unauthenticated visitor to the login screen
	// with a callback back to where they were.
	DecisionLogin
	// DecisionWrongRole redirects an authenticated user to their own role's
	// home screen.
	DecisionWrongRole
	// DecisionAllow admits the user.
	DecisionAllow
)

// GateResult is a gate decision plus the redirect target, when one applies.
type GateResult struct {
	Decision   Decision `json:"decision"`
	RedirectTo string   `json:"redirectTo,omitempty"`
}

// RoleHome returns the home screen for a role. Unrecognized roles land on the
// site root.
func RoleHome(role models.Role) string {
	switch models.NormalizeRole(role) {
	case models.RoleCustomer:
		return utils.PathCustomerHome
	case models.RoleBarber:
		return utils.PathStaffDashboard
	case models.RoleSuperAdmin:
		return utils.PathAdminDashboard
	}
	return utils.PathRoot
}

// Evaluate gates a screen restricted to the given roles. It only ever
// redirects from a settled state: while the session is initializing or
// loading the result is DecisionLoading and the caller renders a neutral
// loading view.
func Evaluate(st State, required []models.Role, currentPath string) GateResult {
	if !st.IsInitialized || st.IsLoading {
		return GateResult{Decision: DecisionLoading}
	}
	if st.User == nil {
		return GateResult{
			Decision:   DecisionLogin,
			RedirectTo: utils.PathLogin + "?callbackUrl=" + url.QueryEscape(currentPath),
		}
	}
	role := models.NormalizeRole(st.User.Role)
	for _, want := range required {
		if role == models.NormalizeRole(want) {
			return GateResult{Decision: DecisionAllow}
		}
	}
	return GateResult{Decision: DecisionWrongRole, RedirectTo: RoleHome(role)}
}

// Allowed evaluates the gate against the store's current state.
func (s *SessionStore) Allowed(required []models.Role, currentPath string) GateResult {
	return Evaluate(s.Snapshot(), required, currentPath)
}
