package models

import "time"

// DashboardStats aggregates the numbers shown on the staff and admin
// dashboards. Barbers see their own figures, super admins see the whole shop.
type DashboardStats struct {
	TotalAppointments     int64   `json:"totalAppointments"`
	TodayAppointments     int64   `json:"todayAppointments"`
	MonthlyRevenue        float64 `json:"monthlyRevenue"`
	PendingAppointments   int64   `json:"pendingAppointments"`
	CompletedAppointments int64   `json:"completedAppointments"`
	CancelledAppointments int64   `json:"cancelledAppointments"`
}

// RecentActivity is one entry of the dashboard activity feed.
type RecentActivity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	CustomerID    string `json:"customerId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
