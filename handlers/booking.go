package handlers

import (
	"errors"
	"net/http"

	"barberbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func wizardErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrStepIncomplete):
		return http.StatusConflict
	case errors.Is(err, booking.ErrNoEligibleStaff), errors.Is(err, booking.ErrNoService):
		return http.StatusUnprocessableEntity
	case booking.IsWizardError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func wizardError(c *gin.Context, err error) {
	resp := gin.H{"error": err.Error()}
	var we *booking.WizardError
	if errors.As(err, &we) {
		resp["code"] = we.Code
	}
	c.JSON(wizardErrorStatus(err), resp)
}

// StartWizardHandler creates a fresh booking session for the caller.
func (hb *HandlerBundle) StartWizardHandler(c *gin.Context) {
	session, err := hb.Wizard.Start(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		getLogger(c).Error("Failed to start booking session", zap.Error(err))
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetWizardHandler returns the current state of a booking session along with
// the per-step completion map the progress indicator renders.
func (hb *HandlerBundle) GetWizardHandler(c *gin.Context) {
	session, err := hb.Wizard.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":    session,
		"canAdvance": booking.CanAdvance(session.Form),
		"completion": booking.CompletionState(session.Form),
	})
}

// SelectServiceHandler records the chosen service on step one.
func (hb *HandlerBundle) SelectServiceHandler(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := hb.Wizard.SelectService(c.Request.Context(), c.Param("sessionID"), req.ServiceID)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectBarberHandler records the chosen staff member on step two.
func (hb *HandlerBundle) SelectBarberHandler(c *gin.Context) {
	var req struct {
		BarberID string `json:"barberId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := hb.Wizard.SelectBarber(c.Request.Context(), c.Param("sessionID"), req.BarberID)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDateTimeHandler records the chosen date and time slot on step three.
func (hb *HandlerBundle) SelectDateTimeHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := hb.Wizard.SelectDateTime(c.Request.Context(), c.Param("sessionID"), req.Date, req.Time)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetNotesHandler stores optional notes on the confirmation step.
func (hb *HandlerBundle) SetNotesHandler(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := hb.Wizard.SetNotes(c.Request.Context(), c.Param("sessionID"), req.Notes)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdvanceWizardHandler moves the session to the next step if the current one
// is complete.
func (hb *HandlerBundle) AdvanceWizardHandler(c *gin.Context) {
	session, err := hb.Wizard.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RetreatWizardHandler moves the session back one step, preserving entries.
func (hb *HandlerBundle) RetreatWizardHandler(c *gin.Context) {
	session, err := hb.Wizard.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// JumpWizardHandler moves the session to an arbitrary step. Out-of-range
// steps, zero included, land back on step one.
func (hb *HandlerBundle) JumpWizardHandler(c *gin.Context) {
	var req struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := hb.Wizard.JumpTo(c.Request.Context(), c.Param("sessionID"), req.Step)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// EligibleStaffHandler lists the staff members able to perform the session's
// selected service.
func (hb *HandlerBundle) EligibleStaffHandler(c *gin.Context) {
	staff, err := hb.Wizard.EligibleStaff(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// QuoteHandler computes the amount due for the session's selected service.
// The quote is always derived fresh from the catalogue.
func (hb *HandlerBundle) QuoteHandler(c *gin.Context) {
	quote, err := hb.Wizard.Quote(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// PayHandler runs the payment attempt for a completed wizard. A declined
// payment is a normal response, not an error: the session stays on the
// payment step for a retry.
func (hb *HandlerBundle) PayHandler(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	outcome, err := hb.Wizard.Pay(c.Request.Context(), c.Param("sessionID"), req.PaymentMethod)
	if err != nil {
		getLogger(c).Error("Payment attempt failed", zap.String("sessionId", c.Param("sessionID")), zap.Error(err))
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// CancelWizardHandler discards a booking session.
func (hb *HandlerBundle) CancelWizardHandler(c *gin.Context) {
	if err := hb.Wizard.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}
