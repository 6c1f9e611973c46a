package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	appointmentRepoPkg "barberbook/database/repository/appointment"
	serviceRepoPkg "barberbook/database/repository/service"
	userRepoPkg "barberbook/database/repository/user"
	"barberbook/handlers"
	"barberbook/routes"
	"barberbook/services/appointment"
	"barberbook/services/auth"
	"barberbook/services/booking"
	"barberbook/services/report"
	"barberbook/services/tasks"
	"barberbook/services/user"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:  userRepo,
		Cache: utils.GetAuthCacheClient(),
	}

	sessionManager := auth.NewManager(userService, utils.GetAuthCacheClient())

	reminderScheduler := tasks.NewScheduler()
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:      appointmentRepo,
		Services:  serviceRepo,
		Users:     userRepo,
		Reminders: reminderScheduler,
	}

	wizardService := &booking.DefaultWizardService{
		Store:        booking.NewRedisFormStore(utils.GetBookingCacheClient()),
		Services:     serviceRepo,
		Users:        userRepo,
		Appointments: appointmentService,
		Payments:     booking.NewPaymentSimulator(logger),
	}

	reportService := &report.DefaultReportService{
		Appointments: appointmentRepo,
		Users:        userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		ServiceRepo:  serviceRepo,
		Cache:        utils.GetCacheClient(),
		Users:        userService,
		Sessions:     sessionManager,
		Wizard:       wizardService,
		Appointments: appointmentService,
		Reports:      reportService,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Run the reminder worker alongside the API.
	cron.InitReminderWorker(userRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if reminderScheduler != nil {
		_ = reminderScheduler.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
