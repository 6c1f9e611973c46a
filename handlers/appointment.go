package handlers

import (
	"net/http"

	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func callerRole(c *gin.Context) models.Role {
	if v, ok := c.Get(middleware.ContextRoleKey); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return models.RoleCustomer
}

// CreateAppointmentHandler books an appointment directly, outside the wizard.
func (hb *HandlerBundle) CreateAppointmentHandler(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := hb.Appointments.Book(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		getLogger(c).Warn("Booking failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// MyAppointmentsHandler lists the caller's appointments: bookings for
// customers, assigned appointments for staff.
func (hb *HandlerBundle) MyAppointmentsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var (
		appts []models.Appointment
		err   error
	)
	if callerRole(c).IsStaff() {
		appts, err = hb.Appointments.ListForBarber(userID)
	} else {
		appts, err = hb.Appointments.ListForCustomer(userID)
	}
	if err != nil {
		getLogger(c).Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointmentHandler returns a single appointment. Customers may only see
// their own, barbers the ones assigned to them.
func (hb *HandlerBundle) GetAppointmentHandler(c *gin.Context) {
	appt, err := hb.Appointments.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	userID := c.GetString("userID")
	role := callerRole(c)
	switch {
	case role == models.RoleSuperAdmin:
	case role == models.RoleBarber && appt.BarberID == userID:
	case appt.CustomerID == userID:
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentStatusHandler moves an appointment through its lifecycle.
func (hb *HandlerBundle) UpdateAppointmentStatusHandler(c *gin.Context) {
	var req struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := hb.Appointments.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AvailabilityHandler returns the half-hour slot grid for a barber on a day.
func (hb *HandlerBundle) AvailabilityHandler(c *gin.Context) {
	day, err := appointment.ParseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}

	slots, err := hb.Appointments.Availability(c.Param("barberId"), day)
	if err != nil {
		getLogger(c).Error("Failed to compute availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
