package report

import (
	"fmt"

	appointmentRepo "barberbook/database/repository/appointment"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
)

const defaultActivityLimit = 10

// ReportService builds the dashboard views for staff and super admins.
type ReportService interface {
	// Dashboard returns the aggregated counters for the given viewer. A
	// barber sees only their own appointments, a super admin the whole shop.
	Dashboard(viewerID string, role models.Role) (*models.DashboardStats, error)
	// RecentActivity returns the newest appointment events for the feed.
	RecentActivity(viewerID string, role models.Role, limit int64) ([]models.RecentActivity, error)
}

type DefaultReportService struct {
	Appointments appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository
}

func (s *DefaultReportService) filterFor(viewerID string, role models.Role) appointmentRepo.StatsFilter {
	if role == models.RoleSuperAdmin {
		return appointmentRepo.StatsFilter{}
	}
	return appointmentRepo.StatsFilter{BarberID: viewerID}
}

func (s *DefaultReportService) Dashboard(viewerID string, role models.Role) (*models.DashboardStats, error) {
	stats, err := s.Appointments.Stats(s.filterFor(viewerID, role))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard stats: %w", err)
	}
	return stats, nil
}

func (s *DefaultReportService) RecentActivity(viewerID string, role models.Role, limit int64) ([]models.RecentActivity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	appts, err := s.Appointments.Recent(s.filterFor(viewerID, role), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent appointments: %w", err)
	}

	activity := make([]models.RecentActivity, 0, len(appts))
	for _, appt := range appts {
		entry := models.RecentActivity{
			ID:        appt.ID,
			Type:      activityType(appt.Status),
			Timestamp: appt.UpdatedAt,
			UserID:    appt.CustomerID,
		}

		customerName := "a customer"
		if customer, err := s.Users.GetByID(appt.CustomerID); err == nil && customer != nil {
			customerName = customer.FullName()
			entry.UserName = customerName
		}
		entry.Description = describe(appt.Status, customerName)

		activity = append(activity, entry)
	}
	return activity, nil
}

func activityType(status models.AppointmentStatus) string {
	switch status {
	case models.AppointmentCancelled:
		return "appointment_cancelled"
	case models.AppointmentCompleted:
		return "appointment_completed"
	case models.AppointmentConfirmed:
		return "appointment_confirmed"
	default:
		return "appointment_booked"
	}
}

func describe(status models.AppointmentStatus, customerName string) string {
	switch status {
	case models.AppointmentCancelled:
		return fmt.Sprintf("Appointment for %s was cancelled", customerName)
	case models.AppointmentCompleted:
		return fmt.Sprintf("Appointment for %s was completed", customerName)
	case models.AppointmentConfirmed:
		return fmt.Sprintf("Appointment for %s was confirmed", customerName)
	default:
		return fmt.Sprintf("%s booked a new appointment", customerName)
	}
}
