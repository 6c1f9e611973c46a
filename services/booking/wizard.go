package booking

import (
	"context"
	"fmt"

	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a fresh wizard session on step 1 for the given customer.
func (s *DefaultWizardService) Start(ctx context.Context, userID string) (*WizardSession, error) {
	session := &WizardSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Form:      models.NewBookingForm(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking wizard started",
		zap.String("sessionId", session.SessionID), zap.String("userId", userID))
	return session, nil
}

// Get returns the current wizard session.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*WizardSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SelectService records the chosen service. Re-selecting a different service
// is allowed after retreating; dependent selections stay as they are and are
// re-validated when the wizard reaches them again.
func (s *DefaultWizardService) SelectService(ctx context.Context, sessionID, serviceID string) (*WizardSession, error) {
	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("unknown service %s: %w", serviceID, err)
	}
	if !svc.IsActive {
		return nil, fmt.Errorf("service %s is not bookable", serviceID)
	}
	return s.mutate(ctx, sessionID, func(f *models.BookingForm) {
		f.ServiceID = svc.ID
	})
}

// SelectBarber records the chosen staff member after checking eligibility for
// the selected service.
func (s *DefaultWizardService) SelectBarber(ctx context.Context, sessionID, barberID string) (*WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Form.ServiceID == "" {
		return nil, ErrNoService
	}
	svc, err := s.Services.GetByID(session.Form.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected service: %w", err)
	}
	roster, err := s.Users.GetStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff roster: %w", err)
	}
	eligible, err := EligibleStaff(*svc, roster)
	if err != nil {
		return nil, err
	}
	for _, member := range eligible {
		if member.ID == barberID {
			session.Form.BarberID = barberID
			if err := s.Store.Save(ctx, session); err != nil {
				return nil, err
			}
			return session, nil
		}
	}
	return nil, fmt.Errorf("staff member %s is not eligible for this service", barberID)
}

// SelectDateTime records the appointment date ("2006-01-02") and time ("HH:MM").
func (s *DefaultWizardService) SelectDateTime(ctx context.Context, sessionID, date, timeOfDay string) (*WizardSession, error) {
	return s.mutate(ctx, sessionID, func(f *models.BookingForm) {
		f.AppointmentDate = date
		f.AppointmentTime = timeOfDay
	})
}

// SetNotes records the optional notes from the summary step.
func (s *DefaultWizardService) SetNotes(ctx context.Context, sessionID, notes string) (*WizardSession, error) {
	return s.mutate(ctx, sessionID, func(f *models.BookingForm) {
		f.Notes = notes
	})
}

// Advance moves the wizard one step forward when the current step is complete.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := Advance(&session.Form); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Retreat moves the wizard one step back.
func (s *DefaultWizardService) Retreat(ctx context.Context, sessionID string) (*WizardSession, error) {
	return s.mutate(ctx, sessionID, func(f *models.BookingForm) {
		Retreat(f)
	})
}

// JumpTo moves the wizard to the given step; out-of-range targets land on
// step 1.
func (s *DefaultWizardService) JumpTo(ctx context.Context, sessionID string, step int) (*WizardSession, error) {
	return s.mutate(ctx, sessionID, func(f *models.BookingForm) {
		JumpTo(f, step)
	})
}

// EligibleStaff returns the staff members who may fulfil the selected service.
func (s *DefaultWizardService) EligibleStaff(ctx context.Context, sessionID string) ([]models.User, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Form.ServiceID == "" {
		return nil, ErrNoService
	}
	svc, err := s.Services.GetByID(session.Form.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected service: %w", err)
	}
	roster, err := s.Users.GetStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff roster: %w", err)
	}
	return EligibleStaff(*svc, roster)
}

// Quote recomputes the payment amount for the currently selected service. It
// is never cached: retreating and re-selecting a different service yields a
// fresh quote.
func (s *DefaultWizardService) Quote(ctx context.Context, sessionID string) (*models.PaymentQuote, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Form.ServiceID == "" {
		return nil, ErrNoService
	}
	svc, err := s.Services.GetByID(session.Form.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected service: %w", err)
	}
	quote := Quote(*svc)
	return &quote, nil
}

// Pay runs one payment attempt for the assembled booking. On success the
// appointment is created, the wizard session is cleared back to its initial
// state and the confirmation redirect is signalled. On failure the session is
// left untouched on the payment step so the customer can retry with the same
// amount and type.
func (s *DefaultWizardService) Pay(ctx context.Context, sessionID, paymentMethod string) (*PaymentOutcome, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for step := models.StepSelectService; step <= models.StepSummary; step++ {
		if !StepComplete(session.Form, step) {
			return nil, ErrStepIncomplete
		}
	}

	session.Form.Step = models.StepPayment
	session.Form.PaymentMethod = paymentMethod
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	svc, err := s.Services.GetByID(session.Form.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected service: %w", err)
	}
	quote := Quote(*svc)

	appointmentID := uuid.New().String()
	result := s.Payments.Simulate(appointmentID, quote.Amount, quote.PaymentType)
	if !result.Success {
		// The simulated decline is a first-class outcome: no state is reset,
		// the caller may retry.
		return &PaymentOutcome{Result: result}, nil
	}

	appt, err := s.Appointments.Book(ctx, session.UserID, models.CreateAppointmentRequest{
		ServiceID:       session.Form.ServiceID,
		BarberID:        session.Form.BarberID,
		AppointmentDate: session.Form.AppointmentDate + "T" + session.Form.AppointmentTime,
		Notes:           session.Form.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("payment succeeded but booking failed: %w", err)
	}
	result.AppointmentID = appt.ID

	// Terminal success path: the one place the wizard drops progress.
	Reset(&session.Form)
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to clear booking session after success",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	return &PaymentOutcome{
		Result:      result,
		Appointment: appt,
		RedirectTo:  utils.PathBookingConfirmed,
	}, nil
}

// Cancel discards an in-progress wizard session.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultWizardService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingForm)) (*WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(&session.Form)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
