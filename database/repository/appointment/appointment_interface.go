package appointmentRepo

import (
	"time"

	"barberbook/models"
)

// StatsFilter narrows dashboard aggregations; a zero value covers the whole
// shop, a BarberID restricts to one staff member's appointments.
type StatsFilter struct {
	BarberID string
}

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetByCustomer retrieves a customer's appointments, newest first.
	GetByCustomer(customerID string) ([]models.Appointment, error)
	// GetByBarber retrieves a barber's appointments, newest first.
	GetByBarber(barberID string) ([]models.Appointment, error)
	// GetByBarberAndDate retrieves non-cancelled appointments for a barber
	// within the given day, used to compute the availability grid.
	GetByBarberAndDate(barberID string, day time.Time) ([]models.Appointment, error)
	// GetAll retrieves every appointment, newest first.
	GetAll() ([]models.Appointment, error)
	// Create inserts a new appointment.
	Create(appt *models.Appointment) error
	// UpdateStatus transitions an appointment to a new status.
	UpdateStatus(id string, status models.AppointmentStatus) (*models.Appointment, error)
	// Stats aggregates the dashboard counters.
	Stats(filter StatsFilter) (*models.DashboardStats, error)
	// Recent returns the newest appointments for the activity feed.
	Recent(filter StatsFilter, limit int64) ([]models.Appointment, error)
}
