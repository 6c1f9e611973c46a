package booking

import "barberbook/models"

// The step controller: pure transition logic over a BookingForm. Transitions
// are strictly linear; Advance is gated by the current step's completion
// predicate, Retreat is unconditional down to step 1, and out-of-range jumps
// land back on step 1.

// StepComplete reports whether every field the given step requires is
// populated.
func StepComplete(f models.BookingForm, step int) bool {
	switch step {
	case models.StepSelectService:
		return f.ServiceID != ""
	case models.StepSelectBarber:
		return f.BarberID != ""
	case models.StepSelectDateTime:
		return f.AppointmentDate != "" && f.AppointmentTime != ""
	case models.StepSummary:
		return true // notes are optional
	case models.StepPayment:
		return f.PaymentMethod != ""
	}
	return false
}

// CanAdvance reports whether the wizard may move forward from its current
// step.
func CanAdvance(f models.BookingForm) bool {
	return f.Step < models.StepPayment && StepComplete(f, f.Step)
}

// Advance moves the wizard one step forward, returning ErrStepIncomplete when
// the current step's completion predicate does not hold. The step never
// exceeds the payment step.
func Advance(f *models.BookingForm) error {
	if f.Step >= models.StepPayment {
		return nil
	}
	if !StepComplete(*f, f.Step) {
		return ErrStepIncomplete
	}
	f.Step++
	return nil
}

// Retreat moves the wizard one step back unconditionally, never below step 1.
func Retreat(f *models.BookingForm) {
	if f.Step > models.StepSelectService {
		f.Step--
	}
}

// JumpTo moves the wizard to an arbitrary step, e.g. from a deep link.
// Out-of-range targets are redirected to step 1.
func JumpTo(f *models.BookingForm, step int) {
	if step < models.StepSelectService || step > models.StepPayment {
		f.Step = models.StepSelectService
		return
	}
	f.Step = step
}

// Reset returns the form to its documented initial state.
func Reset(f *models.BookingForm) {
	*f = models.NewBookingForm()
}

// CompletionState reports the completion predicate for every step at once,
// the shape the wizard UI consumes to render its progress indicator.
func CompletionState(f models.BookingForm) map[int]bool {
	out := make(map[int]bool, models.StepPayment)
	for step := models.StepSelectService; step <= models.StepPayment; step++ {
		out[step] = StepComplete(f, step)
	}
	return out
}
