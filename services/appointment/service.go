package appointment

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// appointmentDateLayout is the wire format the wizard assembles:
// date + "T" + half-hour slot.
const appointmentDateLayout = "2006-01-02T15:04"

// Book validates the assembled booking request and creates a Pending
// appointment. The total and deposit amounts are derived from the service at
// booking time so later catalogue price changes never rewrite history.
func (s *DefaultAppointmentService) Book(ctx context.Context, customerID string, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	when, err := time.ParseInLocation(appointmentDateLayout, req.AppointmentDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment date %q: %w", req.AppointmentDate, err)
	}
	if !ValidSlot(when.Format("15:04")) {
		return nil, fmt.Errorf("time %s is not an offered slot", when.Format("15:04"))
	}

	svc, err := s.Services.GetByID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("unknown service: %w", err)
	}
	if !svc.IsActive {
		return nil, fmt.Errorf("service %s is not bookable", svc.ID)
	}

	barber, err := s.Users.GetByID(req.BarberID)
	if err != nil {
		return nil, fmt.Errorf("unknown staff member: %w", err)
	}
	if _, err := booking.EligibleStaff(*svc, []models.User{*barber}); err != nil {
		return nil, fmt.Errorf("staff member %s cannot fulfil this service: %w", barber.ID, err)
	}

	quote := booking.Quote(*svc)
	now := time.Now()
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		CustomerID:      customerID,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		AppointmentDate: when,
		Status:          models.AppointmentPending,
		TotalAmount:     svc.Price,
		DepositAmount:   quote.Amount,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(appt); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("customerId", customerID),
		zap.String("barberId", req.BarberID))
	return appt, nil
}

// GetByID returns one appointment with its relations populated.
func (s *DefaultAppointmentService) GetByID(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.decorate(appt)
	return appt, nil
}

// ListForCustomer returns a customer's appointments, newest first.
func (s *DefaultAppointmentService) ListForCustomer(customerID string) ([]models.Appointment, error) {
	return s.decorated(s.Repo.GetByCustomer(customerID))
}

// ListForBarber returns a barber's appointments, newest first.
func (s *DefaultAppointmentService) ListForBarber(barberID string) ([]models.Appointment, error) {
	return s.decorated(s.Repo.GetByBarber(barberID))
}

// ListAll returns every appointment. Admin views only.
func (s *DefaultAppointmentService) ListAll() ([]models.Appointment, error) {
	return s.decorated(s.Repo.GetAll())
}

// legalTransitions captures the appointment lifecycle: pending bookings are
// confirmed or cancelled, confirmed ones completed or cancelled, and the
// terminal states never move again.
var legalTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.AppointmentPending:   {models.AppointmentConfirmed, models.AppointmentCancelled},
	models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled},
}

// UpdateStatus transitions an appointment through its lifecycle. Confirming
// schedules a customer reminder when a scheduler is wired.
func (s *DefaultAppointmentService) UpdateStatus(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range legalTransitions[current.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition appointment from %s to %s", current.Status, status)
	}

	appt, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}

	if status == models.AppointmentConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(appt); err != nil {
			utils.GetLogger().Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	s.decorate(appt)
	return appt, nil
}

func (s *DefaultAppointmentService) decorated(appts []models.Appointment, err error) ([]models.Appointment, error) {
	if err != nil {
		return nil, err
	}
	for i := range appts {
		s.decorate(&appts[i])
	}
	return appts, nil
}

// decorate populates the denormalized relations for list views. Lookup
// failures leave the relation nil rather than failing the listing.
func (s *DefaultAppointmentService) decorate(appt *models.Appointment) {
	if u, err := s.Users.GetByID(appt.CustomerID); err == nil {
		u.PasswordHash, u.TokenHash = "", ""
		appt.Customer = u
	}
	if b, err := s.Users.GetByID(appt.BarberID); err == nil {
		b.PasswordHash, b.TokenHash = "", ""
		appt.Barber = b
	}
	if svc, err := s.Services.GetByID(appt.ServiceID); err == nil {
		appt.Service = svc
	}
}
