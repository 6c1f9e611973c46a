package user

import (
	"context"
	"net/http"
	"time"

	"barberbook/models"
	"barberbook/services/auth"
	"barberbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenCacheTTL bounds how long a validated token hash stays cached before
// the next check falls back to the user record.
const tokenCacheTTL = time.Hour

// Login authenticates credentials and issues a fresh access/refresh token
// pair. Credential failures are deliberately indistinguishable.
func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "authentication failed, please try again")
	}
	if rec == nil {
		return nil, auth.NewAPIError(http.StatusUnauthorized, "invalid email or password")
	}
	if !rec.IsActive {
		return nil, auth.NewAPIError(http.StatusForbidden, "account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.NewAPIError(http.StatusUnauthorized, "invalid email or password")
	}

	return s.issueTokens(ctx, rec)
}

// Register creates a new customer account.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) error {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return auth.NewAPIError(http.StatusInternalServerError, "registration failed, please try again")
	}
	if existing != nil {
		return auth.NewAPIError(http.StatusConflict, "a user with this email already exists")
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return auth.NewAPIError(http.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return auth.NewAPIError(http.StatusInternalServerError, "registration failed, please try again")
	}

	now := time.Now()
	rec := &models.User{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(rec); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return auth.NewAPIError(http.StatusInternalServerError, "registration failed, please try again")
	}
	return nil
}

// Logout revokes the token server-side: the stored hash is cleared so the
// token can no longer validate, and the cache entry is dropped.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	userID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		// A token that no longer parses has nothing to revoke.
		return nil
	}
	if err := s.Repo.UpdateWithDocument(userID, bson.M{
		"$set": bson.M{"token_hash": "", "updated_at": time.Now()},
	}); err != nil {
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Warn("Logout: failed to clear token cache", zap.Error(err))
		}
	}
	return nil
}

// CurrentUser resolves a token to its user, checking the token hash against
// the cache first and the user record on a miss.
func (s *DefaultUserService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return nil, auth.NewAPIError(http.StatusUnauthorized, "invalid or expired token")
	}
	computed := utils.HashToken(token)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, utils.AuthCachePrefix+userID).Result()
		if err == nil {
			if cached != computed {
				return nil, auth.NewAPIError(http.StatusUnauthorized, "token mismatch")
			}
			_ = s.Cache.Expire(ctx, utils.AuthCachePrefix+userID, tokenCacheTTL).Err()
			return s.sanitizedByID(userID)
		} else if err != redis.Nil {
			utils.GetLogger().Warn("CurrentUser: token cache read failed", zap.Error(err))
		}
	}

	rec, err := s.Repo.GetByID(userID)
	if err != nil || rec == nil {
		return nil, auth.NewAPIError(http.StatusUnauthorized, "authentication error")
	}
	if rec.TokenHash == "" || rec.TokenHash != computed {
		return nil, auth.NewAPIError(http.StatusUnauthorized, "token mismatch")
	}
	if s.Cache != nil {
		_ = s.Cache.Set(ctx, utils.AuthCachePrefix+userID, computed, tokenCacheTTL).Err()
	}
	return sanitize(rec), nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
func (s *DefaultUserService) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	userID, err := utils.ExtractRefreshSubject(refreshToken)
	if err != nil {
		return nil, auth.NewAPIError(http.StatusUnauthorized, "invalid refresh token")
	}
	rec, err := s.Repo.GetByID(userID)
	if err != nil || rec == nil {
		return nil, auth.NewAPIError(http.StatusUnauthorized, "invalid refresh token")
	}
	if !rec.IsActive {
		return nil, auth.NewAPIError(http.StatusForbidden, "account is disabled")
	}
	return s.issueTokens(ctx, rec)
}

// ChangePassword verifies the current password and stores the new one. The
// issued tokens stay valid.
func (s *DefaultUserService) ChangePassword(ctx context.Context, token, current, next string) error {
	me, err := s.CurrentUser(ctx, token)
	if err != nil {
		return err
	}
	rec, err := s.Repo.GetByID(me.ID)
	if err != nil || rec == nil {
		return auth.NewAPIError(http.StatusInternalServerError, "failed to load account")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(current)); err != nil {
		return auth.NewAPIError(http.StatusUnauthorized, "current password is incorrect")
	}
	if err := VerifyPasswordComplexity(next); err != nil {
		return auth.NewAPIError(http.StatusBadRequest, err.Error())
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ChangePassword: failed to hash password", zap.Error(err))
		return auth.NewAPIError(http.StatusInternalServerError, "password change failed, please try again")
	}
	return s.Repo.UpdateWithDocument(rec.ID, bson.M{
		"$set": bson.M{"password_hash": string(hashed), "updated_at": time.Now()},
	})
}

func (s *DefaultUserService) issueTokens(ctx context.Context, rec *models.User) (*models.AuthResponse, error) {
	access, err := utils.GenerateToken(rec.ID, rec.Email, utils.AccessTokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueTokens: failed to sign access token", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "authentication failed, please try again")
	}
	refresh, err := utils.GenerateRefreshToken(rec.ID)
	if err != nil {
		utils.GetLogger().Error("issueTokens: failed to sign refresh token", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "authentication failed, please try again")
	}

	tokenHash := utils.HashToken(access)
	if err := s.Repo.UpdateWithDocument(rec.ID, bson.M{
		"$set": bson.M{"token_hash": tokenHash, "updated_at": time.Now()},
	}); err != nil {
		utils.GetLogger().Error("issueTokens: failed to store token hash", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "authentication failed, please try again")
	}
	if s.Cache != nil {
		_ = s.Cache.Set(ctx, utils.AuthCachePrefix+rec.ID, tokenHash, tokenCacheTTL).Err()
	}

	return &models.AuthResponse{
		User:         *sanitize(rec),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *DefaultUserService) sanitizedByID(id string) (*models.User, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil || rec == nil {
		return nil, auth.NewAPIError(http.StatusUnauthorized, "authentication error")
	}
	return sanitize(rec), nil
}

// sanitize strips credentials before a record leaves the service.
func sanitize(rec *models.User) *models.User {
	out := *rec
	out.PasswordHash = ""
	out.TokenHash = ""
	out.Role = models.NormalizeRole(out.Role)
	return &out
}
