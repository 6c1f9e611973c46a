package handlers

import (
	"net/http"
	"strconv"

	"barberbook/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DashboardHandler returns the aggregated counters for the caller's
// dashboard. Barbers see their own figures, super admins the whole shop.
func (hb *HandlerBundle) DashboardHandler(c *gin.Context) {
	stats, err := hb.Reports.Dashboard(c.GetString("userID"), callerRole(c))
	if err != nil {
		getLogger(c).Error("Failed to build dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecentActivityHandler returns the dashboard activity feed.
func (hb *HandlerBundle) RecentActivityHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	activity, err := hb.Reports.RecentActivity(c.GetString("userID"), callerRole(c), limit)
	if err != nil {
		getLogger(c).Error("Failed to build activity feed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// ListAllAppointmentsHandler returns every appointment for the admin view.
func (hb *HandlerBundle) ListAllAppointmentsHandler(c *gin.Context) {
	appts, err := hb.Appointments.ListAll()
	if err != nil {
		getLogger(c).Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListAllUsersHandler returns every account for the admin view.
func (hb *HandlerBundle) ListAllUsersHandler(c *gin.Context) {
	users, err := hb.Users.GetAllUsers()
	if err != nil {
		getLogger(c).Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateServiceHandler adds a catalogue entry.
func (hb *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}

	if err := hb.ServiceRepo.Create(&svc); err != nil {
		getLogger(c).Error("Failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	hb.invalidateCatalogCache(c)
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler replaces a catalogue entry.
func (hb *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc.ID = c.Param("id")

	if err := hb.ServiceRepo.Update(&svc); err != nil {
		getLogger(c).Error("Failed to update service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	hb.invalidateCatalogCache(c)
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler removes a catalogue entry.
func (hb *HandlerBundle) DeleteServiceHandler(c *gin.Context) {
	if err := hb.ServiceRepo.Delete(c.Param("id")); err != nil {
		getLogger(c).Error("Failed to delete service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	hb.invalidateCatalogCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ListBarbersHandler returns the full barber roster, inactive ones included.
func (hb *HandlerBundle) ListBarbersHandler(c *gin.Context) {
	barbers, err := hb.Users.ListBarbers()
	if err != nil {
		getLogger(c).Error("Failed to list barbers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load barbers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}

// CreateBarberHandler provisions a new barber account.
func (hb *HandlerBundle) CreateBarberHandler(c *gin.Context) {
	var req models.CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	barber, err := hb.Users.CreateBarber(req)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, barber)
}

// UpdateBarberHandler edits a barber's profile.
func (hb *HandlerBundle) UpdateBarberHandler(c *gin.Context) {
	var req models.UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	barber, err := hb.Users.UpdateBarber(c.Param("id"), req)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, barber)
}

// SetBarberStatusHandler toggles whether a barber is bookable.
func (hb *HandlerBundle) SetBarberStatusHandler(c *gin.Context) {
	var req models.SetBarberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	barber, err := hb.Users.SetBarberStatus(c.Param("id"), *req.IsActive)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, barber)
}

// DeleteBarberHandler removes a barber account.
func (hb *HandlerBundle) DeleteBarberHandler(c *gin.Context) {
	if err := hb.Users.DeleteBarber(c.Param("id")); err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Barber deleted"})
}

// ListAllServicesHandler returns the full catalogue including inactive
// entries.
func (hb *HandlerBundle) ListAllServicesHandler(c *gin.Context) {
	services, err := hb.ServiceRepo.GetAll()
	if err != nil {
		getLogger(c).Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
