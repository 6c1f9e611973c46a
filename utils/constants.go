package utils

// Persisted-storage keys for the portal session. Read once at initialize,
// written on login, removed on logout.
const (
	StorageKeyAuthToken    = "auth_token"
	StorageKeyRefreshToken = "refresh_token"
	StorageKeyUser         = "user"
)

// AuthCachePrefix namespaces token-hash cache entries in Redis.
const AuthCachePrefix = "authToken:"

// Role home paths the role gate redirects to when an authenticated user
// lands in an area their role does not cover.
const (
	PathRoot             = "/"
	PathLogin            = "/login"
	PathCustomerHome     = "/my-appointments"
	PathStaffDashboard   = "/admin/dashboard"
	PathAdminDashboard   = "/super-admin/dashboard"
	PathBookingConfirmed = "/appointment/success"
)

// BookingTimeSlots is the half-hour grid offered by the date/time step.
var BookingTimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	"18:00", "18:30", "19:00", "19:30", "20:00", "20:30",
}
