package models

import "time"

// User represents any account on the platform: customers, barbers and the
// super admin all share the same record, distinguished by Role.
type User struct {
	ID            string         `bson:"id" json:"id"`
	FirstName     string         `bson:"first_name" json:"firstName"`
	LastName      string         `bson:"last_name" json:"lastName"`
	Email         string         `bson:"email" json:"email"`
	PhoneNumber   string         `bson:"phone_number" json:"phoneNumber"`
	PasswordHash  string         `bson:"password_hash" json:"-"`
	Role          Role           `bson:"role" json:"role"`
	IsActive      bool           `bson:"is_active" json:"isActive"`
	TokenHash     string         `bson:"token_hash,omitempty" json:"-"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// FullName returns the display name used in dashboards and reminders.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Notification is an in-app notification appended to the user record,
// e.g. appointment reminders or payment confirmations.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}

// LoginRequest carries credentials for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries the fields collected by the registration form.
type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// AuthResponse is returned by login and token refresh.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// CreateBarberRequest carries the fields of the admin "add barber" form.
type CreateBarberRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UpdateBarberRequest carries the editable barber profile fields.
type UpdateBarberRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// SetBarberStatusRequest toggles whether a barber is bookable.
type SetBarberStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ChangePasswordRequest carries a password change for the current user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
