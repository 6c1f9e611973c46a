package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentConfirmed AppointmentStatus = "Confirmed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
	AppointmentCompleted AppointmentStatus = "Completed"
)

// Appointment is a booked slot with a barber for one service.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	CustomerID      string            `bson:"customer_id" json:"customerId"`
	BarberID        string            `bson:"barber_id" json:"barberId"`
	ServiceID       string            `bson:"service_id" json:"serviceId"`
	AppointmentDate time.Time         `bson:"appointment_date" json:"appointmentDate"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	TotalAmount     float64           `bson:"total_amount" json:"totalAmount"`
	DepositAmount   float64           `bson:"deposit_amount" json:"depositAmount"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updatedAt"`

	// Denormalized for list views; populated by the service layer.
	Customer *User    `bson:"-" json:"customer,omitempty"`
	Barber   *User    `bson:"-" json:"barber,omitempty"`
	Service  *Service `bson:"-" json:"service,omitempty"`
}

// CreateAppointmentRequest is the payload the booking wizard assembles.
type CreateAppointmentRequest struct {
	ServiceID       string `json:"serviceId" binding:"required"`
	BarberID        string `json:"barberId" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	Notes           string `json:"notes,omitempty"`
}

// TimeSlot is one entry of a barber's availability grid for a day.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	BarberID  string `json:"barberId"`
}
