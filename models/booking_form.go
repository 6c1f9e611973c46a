package models

// Booking wizard steps, in order. Transitions are strictly linear.
const (
	StepSelectService  = 1
	StepSelectBarber   = 2
	StepSelectDateTime = 3
	StepSummary        = 4
	StepPayment        = 5
)

// BookingForm accumulates the customer's selections across the five wizard
// steps. The zero value of every field except Step means "not selected yet".
type BookingForm struct {
	Step            int    `json:"step"`
	ServiceID       string `json:"serviceId,omitempty"`
	BarberID        string `json:"barberId,omitempty"`
	AppointmentDate string `json:"appointmentDate,omitempty"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
	Notes           string `json:"notes,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
}

// NewBookingForm returns the documented initial form state: every selection
// empty and the wizard on step 1.
func NewBookingForm() BookingForm {
	return BookingForm{Step: StepSelectService}
}
