package userRepo

import (
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil if absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetStaff retrieves all active users holding a staff role.
	GetStaff() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateWithDocument applies a raw update document to a user record.
	UpdateWithDocument(id string, update bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// PushNotification appends an in-app notification to a user record.
	PushNotification(id string, n models.Notification) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
