package auth

import (
	"context"

	"barberbook/models"
)

// API is the backend auth surface the session store drives. The concrete
// implementation lives in services/user; tests substitute fakes.
type API interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	ChangePassword(ctx context.Context, token, current, next string) error
}

// Storage is the persisted key-value store backing a portal session: the
// auth token, refresh token and cached user record live here. It is read
// once at Initialize and written on login/logout. A nil Storage models an
// environment with no persistence backend at all.
type Storage interface {
	// GetItem returns the stored value, or "" with no error when absent.
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}
