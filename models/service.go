package models

import "time"

// ServiceType distinguishes regular chair services from the VIP offerings
// that only the shop owner may fulfil.
type ServiceType string

const (
	ServiceTypeRegular ServiceType = "Regular"
	ServiceTypeVIPRoom ServiceType = "VIPRoom"
	ServiceTypeVIPCar  ServiceType = "VIPCar"
)

// IsVIP reports whether the service type restricts eligible staff to
// super admins.
func (t ServiceType) IsVIP() bool {
	return t == ServiceTypeVIPRoom || t == ServiceTypeVIPCar
}

// Service is a bookable catalogue entry.
type Service struct {
	ID                  string      `bson:"id" json:"id"`
	Name                string      `bson:"name" json:"name"`
	Description         string      `bson:"description" json:"description"`
	Price               float64     `bson:"price" json:"price"`
	DurationMinutes     int         `bson:"duration_minutes" json:"durationMinutes"`
	ServiceType         ServiceType `bson:"service_type" json:"serviceType"`
	IsActive            bool        `bson:"is_active" json:"isActive"`
	RequiresFullPayment bool        `bson:"requires_full_payment" json:"requiresFullPayment"`
	CreatedAt           time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time   `bson:"updated_at" json:"updatedAt"`
}
