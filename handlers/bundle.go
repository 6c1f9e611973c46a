package handlers

import (
	serviceRepoPkg "barberbook/database/repository/service"
	userRepoPkg "barberbook/database/repository/user"
	"barberbook/services/appointment"
	"barberbook/services/auth"
	"barberbook/services/booking"
	"barberbook/services/report"
	"barberbook/services/user"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the services the endpoint handlers depend on.
type HandlerBundle struct {
	UserRepo    userRepoPkg.UserRepository
	ServiceRepo serviceRepoPkg.ServiceRepository

	// Cache backs short-lived catalogue reads. Handlers fall back to the
	// repository when it is unset.
	Cache *redis.Client

	Users        user.UserService
	Sessions     *auth.Manager
	Wizard       booking.WizardService
	Appointments appointment.AppointmentService
	Reports      report.ReportService
}
