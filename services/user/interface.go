package user

import (
	"context"

	userRepo "barberbook/database/repository/user"
	"barberbook/models"

	"github.com/go-redis/redis/v8"
)

// UserService covers authentication plus the account management the portal
// surfaces. DefaultUserService also satisfies auth.API, which is the slice of
// this interface the session store drives.
type UserService interface {
	// Authentication
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	ChangePassword(ctx context.Context, token, current, next string) error

	// Account / roster management
	GetUserByID(userID string) (*models.User, error)
	GetStaff() ([]models.User, error)
	GetAllUsers() ([]models.User, error)
	ListBarbers() ([]models.User, error)
	CreateBarber(req models.CreateBarberRequest) (*models.User, error)
	UpdateBarber(id string, req models.UpdateBarberRequest) (*models.User, error)
	SetBarberStatus(id string, active bool) (*models.User, error)
	DeleteBarber(id string) error
}

// DefaultUserService is the production implementation, backed by MongoDB for
// records and Redis for token-hash caching.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Cache *redis.Client
}
