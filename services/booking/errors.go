package booking

import (
	"errors"
	"fmt"
)

// WizardError carries a stable code alongside the message so handlers can map
// wizard conditions to responses without string matching.
type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newWizardError(code, msg string) error {
	return &WizardError{Code: code, Message: msg}
}

var (
	// ErrSessionNotFound means the wizard session expired or never existed.
	ErrSessionNotFound = newWizardError("sessionNotFound", "booking session not found or expired")
	// ErrStepIncomplete means the current step's completion predicate does
	// not hold, so the wizard refuses to advance.
	ErrStepIncomplete = newWizardError("stepIncomplete", "current step is not complete")
	// ErrNoEligibleStaff means no staff member can fulfil the selected
	// service. The UI must present this explicitly, never an empty list.
	ErrNoEligibleStaff = newWizardError("noEligibleStaff", "no staff available for the selected service")
	// ErrNoService means a step needing the selected service ran before one
	// was chosen.
	ErrNoService = newWizardError("noService", "no service selected")
)

// IsWizardError reports whether err is (or wraps) a WizardError.
func IsWizardError(err error) bool {
	var we *WizardError
	return errors.As(err, &we)
}
