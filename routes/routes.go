package routes

import (
	"net/http"
	"time"

	"barberbook/config"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the session and account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.GET("/session", hb.SessionHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/register", hb.RegisterHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.POST("/check", hb.CheckAuthHandler)
		api.POST("/refresh", hb.RefreshHandler)
		api.POST("/gate", hb.GateHandler)
		api.POST("/change-password", hb.ChangePasswordHandler)

		api.GET("/me", middleware.JWTAuthMiddleware(hb.UserRepo), hb.MeHandler)
	}
}

// RegisterCatalogRoutes registers the public catalogue endpoints the wizard's
// first two steps read from.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/staff", hb.ListStaffHandler)
	}
}

// RegisterBookingRoutes registers the wizard endpoints. Every route requires
// an authenticated customer.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/session", hb.StartWizardHandler)
		api.GET("/session/:sessionID", hb.GetWizardHandler)
		api.PUT("/session/:sessionID/service", hb.SelectServiceHandler)
		api.PUT("/session/:sessionID/barber", hb.SelectBarberHandler)
		api.PUT("/session/:sessionID/datetime", hb.SelectDateTimeHandler)
		api.PUT("/session/:sessionID/notes", hb.SetNotesHandler)
		api.POST("/session/:sessionID/advance", hb.AdvanceWizardHandler)
		api.POST("/session/:sessionID/back", hb.RetreatWizardHandler)
		api.POST("/session/:sessionID/jump", hb.JumpWizardHandler)
		api.GET("/session/:sessionID/staff", hb.EligibleStaffHandler)
		api.GET("/session/:sessionID/quote", hb.QuoteHandler)
		api.POST("/session/:sessionID/pay", hb.PayHandler)
		api.DELETE("/session/:sessionID", hb.CancelWizardHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("/my", hb.MyAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.GET("/availability/:barberId", hb.AvailabilityHandler)

		staff := api.Group("")
		staff.Use(middleware.RequireRoles(models.RoleBarber, models.RoleSuperAdmin))
		staff.PATCH("/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterStaffRoutes registers the barber dashboard endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRoles(models.RoleBarber, models.RoleSuperAdmin))
		api.GET("/dashboard", hb.DashboardHandler)
		api.GET("/activity", hb.RecentActivityHandler)
	}
}

// RegisterAdminRoutes registers endpoints restricted to super admins.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRoles(models.RoleSuperAdmin))
		api.GET("/dashboard", hb.DashboardHandler)
		api.GET("/activity", hb.RecentActivityHandler)
		api.GET("/appointments", hb.ListAllAppointmentsHandler)
		api.GET("/users", hb.ListAllUsersHandler)
		api.GET("/barbers", hb.ListBarbersHandler)
		api.POST("/barbers", hb.CreateBarberHandler)
		api.PUT("/barbers/:id", hb.UpdateBarberHandler)
		api.PATCH("/barbers/:id/status", hb.SetBarberStatusHandler)
		api.DELETE("/barbers/:id", hb.DeleteBarberHandler)
		api.GET("/services", hb.ListAllServicesHandler)
		api.POST("/services", hb.CreateServiceHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.DeleteServiceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BarberBook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Portal-Session"},
		ExposeHeaders:    []string{"Content-Length", "X-Portal-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
