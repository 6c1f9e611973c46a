package booking

import (
	"context"

	serviceRepo "barberbook/database/repository/service"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
)

// AppointmentBooker finalizes a confirmed booking into an appointment record.
// Implemented by services/appointment.
type AppointmentBooker interface {
	Book(ctx context.Context, customerID string, req models.CreateAppointmentRequest) (*models.Appointment, error)
}

// PaymentOutcome is what one payment attempt produced: the simulation result,
// plus the created appointment and confirmation redirect when it succeeded.
// On failure the wizard stays on the payment step for a retry.
type PaymentOutcome struct {
	Result      models.PaymentSimulation `json:"result"`
	Appointment *models.Appointment      `json:"appointment,omitempty"`
	RedirectTo  string                   `json:"redirectTo,omitempty"`
}

// WizardService sequences the five booking steps for a customer and
// assembles the final appointment request.
type WizardService interface {
	Start(ctx context.Context, userID string) (*WizardSession, error)
	Get(ctx context.Context, sessionID string) (*WizardSession, error)
	SelectService(ctx context.Context, sessionID, serviceID string) (*WizardSession, error)
	SelectBarber(ctx context.Context, sessionID, barberID string) (*WizardSession, error)
	SelectDateTime(ctx context.Context, sessionID, date, timeOfDay string) (*WizardSession, error)
	SetNotes(ctx context.Context, sessionID, notes string) (*WizardSession, error)
	Advance(ctx context.Context, sessionID string) (*WizardSession, error)
	Retreat(ctx context.Context, sessionID string) (*WizardSession, error)
	JumpTo(ctx context.Context, sessionID string, step int) (*WizardSession, error)
	EligibleStaff(ctx context.Context, sessionID string) ([]models.User, error)
	Quote(ctx context.Context, sessionID string) (*models.PaymentQuote, error)
	Pay(ctx context.Context, sessionID, paymentMethod string) (*PaymentOutcome, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store        FormStore
	Services     serviceRepo.ServiceRepository
	Users        userRepo.UserRepository
	Appointments AppointmentBooker
	Payments     *PaymentSimulator
}
