package handlers

import (
	"net/http"

	"barberbook/models"
	"barberbook/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	portalSessionHeader = "X-Portal-Session"
	portalSessionCookie = "portal_session"
)

// portalSessionID resolves the caller's portal session ID from header or
// cookie. An empty return means the caller carries no session.
func portalSessionID(c *gin.Context) string {
	if sid := c.GetHeader(portalSessionHeader); sid != "" {
		return sid
	}
	if sid, err := c.Cookie(portalSessionCookie); err == nil {
		return sid
	}
	return ""
}

// ensurePortalSessionID resolves the portal session ID, minting a fresh one
// when the caller has none yet.
func ensurePortalSessionID(c *gin.Context) string {
	sid := portalSessionID(c)
	if sid == "" {
		sid = uuid.New().String()
	}
	c.Header(portalSessionHeader, sid)
	return sid
}

func authErrorStatus(err error) int {
	if apiErr, ok := err.(*auth.APIError); ok && apiErr.Status != 0 {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// SessionHandler returns the hydrated session state for the caller's portal
// session, restoring it from persisted storage when present.
func (hb *HandlerBundle) SessionHandler(c *gin.Context) {
	sid := ensurePortalSessionID(c)
	store := hb.Sessions.Session(c.Request.Context(), sid)
	c.JSON(http.StatusOK, gin.H{"sessionId": sid, "session": store.Snapshot()})
}

// LoginHandler authenticates the caller and binds the resulting tokens to the
// portal session.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sid := ensurePortalSessionID(c)
	store := hb.Sessions.Session(c.Request.Context(), sid)

	resp, err := store.Login(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error(), "session": store.Snapshot()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sid,
		"session":   store.Snapshot(),
		"auth":      resp,
	})
}

// RegisterHandler creates a new customer account. Registration does not log
// the visitor in; they proceed to the login screen.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sid := ensurePortalSessionID(c)
	store := hb.Sessions.Session(c.Request.Context(), sid)

	if err := store.Register(c.Request.Context(), req); err != nil {
		logger.Warn("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created. Please sign in."})
}

// LogoutHandler clears the portal session unconditionally.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	sid := ensurePortalSessionID(c)
	store := hb.Sessions.Session(c.Request.Context(), sid)
	store.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"session": store.Snapshot(), "redirectTo": "/"})
}

// CheckAuthHandler revalidates the persisted token against the backend and
// returns the settled session state.
func (hb *HandlerBundle) CheckAuthHandler(c *gin.Context) {
	sid := ensurePortalSessionID(c)
	store := hb.Sessions.Session(c.Request.Context(), sid)
	store.CheckAuth(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"session": store.Snapshot()})
}

// RefreshHandler exchanges a refresh token for a fresh token pair.
func (hb *HandlerBundle) RefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := hb.Users.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChangePasswordHandler changes the authenticated caller's password.
func (hb *HandlerBundle) ChangePasswordHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sid := ensurePortalSessionID(c)
	store := hb.Sessions.Session(c.Request.Context(), sid)

	if err := store.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		logger.Warn("Password change failed", zap.Error(err))
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// GateHandler evaluates the role gate for a screen: the client reports which
// roles the screen requires and its path, and gets back one of the settled
// decisions with any redirect target.
func (hb *HandlerBundle) GateHandler(c *gin.Context) {
	var req struct {
		Roles []models.Role `json:"roles" binding:"required"`
		Path  string        `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sid := ensurePortalSessionID(c)
	store := hb.Sessions.Session(c.Request.Context(), sid)
	c.JSON(http.StatusOK, store.Allowed(req.Roles, req.Path))
}

// MeHandler returns the authenticated caller's profile.
func (hb *HandlerBundle) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	usr, err := hb.Users.GetUserByID(userID)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}
