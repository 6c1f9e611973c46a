package appointment

import (
	"context"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	serviceRepo "barberbook/database/repository/service"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/services/tasks"
)

// AppointmentService manages the appointment lifecycle from the wizard's
// confirmed booking through staff status updates.
type AppointmentService interface {
	Book(ctx context.Context, customerID string, req models.CreateAppointmentRequest) (*models.Appointment, error)
	GetByID(id string) (*models.Appointment, error)
	ListForCustomer(customerID string) ([]models.Appointment, error)
	ListForBarber(barberID string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
	UpdateStatus(id string, status models.AppointmentStatus) (*models.Appointment, error)
	Availability(barberID string, day time.Time) ([]models.TimeSlot, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Services serviceRepo.ServiceRepository
	Users    userRepo.UserRepository
	// Reminders is optional; when set, confirming an appointment schedules a
	// reminder ahead of the start time.
	Reminders *tasks.Scheduler
}
