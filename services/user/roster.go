package user

import (
	"net/http"
	"time"

	"barberbook/models"
	"barberbook/services/auth"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ListBarbers returns every barber account, inactive ones included, for the
// admin roster view.
func (s *DefaultUserService) ListBarbers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	barbers := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleBarber {
			barbers = append(barbers, u)
		}
	}
	return sanitizeAll(barbers), nil
}

// CreateBarber provisions a barber account on the roster. New barbers start
// active and bookable.
func (s *DefaultUserService) CreateBarber(req models.CreateBarberRequest) (*models.User, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("CreateBarber: failed to check for existing user", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "failed to create barber, please try again")
	}
	if existing != nil {
		return nil, auth.NewAPIError(http.StatusConflict, "a user with this email already exists")
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, auth.NewAPIError(http.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("CreateBarber: failed to hash password", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "failed to create barber, please try again")
	}

	now := time.Now()
	rec := &models.User{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashed),
		Role:         models.RoleBarber,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(rec); err != nil {
		utils.GetLogger().Error("CreateBarber: failed to create user", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "failed to create barber, please try again")
	}
	return sanitize(rec), nil
}

// UpdateBarber edits a barber's profile fields.
func (s *DefaultUserService) UpdateBarber(id string, req models.UpdateBarberRequest) (*models.User, error) {
	rec, err := s.barberByID(id)
	if err != nil {
		return nil, err
	}
	if rec.Email != req.Email {
		other, err := s.Repo.GetByEmail(req.Email)
		if err != nil {
			utils.GetLogger().Error("UpdateBarber: failed to check for existing user", zap.Error(err))
			return nil, auth.NewAPIError(http.StatusInternalServerError, "failed to update barber, please try again")
		}
		if other != nil {
			return nil, auth.NewAPIError(http.StatusConflict, "a user with this email already exists")
		}
	}

	rec.FirstName = req.FirstName
	rec.LastName = req.LastName
	rec.Email = req.Email
	rec.PhoneNumber = req.PhoneNumber
	rec.UpdatedAt = time.Now()
	if err := s.Repo.Update(rec); err != nil {
		utils.GetLogger().Error("UpdateBarber: failed to update user", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "failed to update barber, please try again")
	}
	return sanitize(rec), nil
}

// SetBarberStatus toggles whether a barber appears on the bookable roster.
// Deactivated barbers keep their account and history.
func (s *DefaultUserService) SetBarberStatus(id string, active bool) (*models.User, error) {
	rec, err := s.barberByID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		utils.GetLogger().Error("SetBarberStatus: failed to update user", zap.Error(err))
		return nil, auth.NewAPIError(http.StatusInternalServerError, "failed to update barber, please try again")
	}
	rec.IsActive = active
	return sanitize(rec), nil
}

// DeleteBarber removes a barber account from the roster.
func (s *DefaultUserService) DeleteBarber(id string) error {
	if _, err := s.barberByID(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("DeleteBarber: failed to delete user", zap.Error(err))
		return auth.NewAPIError(http.StatusInternalServerError, "failed to delete barber, please try again")
	}
	return nil
}

func (s *DefaultUserService) barberByID(id string) (*models.User, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil || rec == nil || rec.Role != models.RoleBarber {
		return nil, auth.NewAPIError(http.StatusNotFound, "barber not found")
	}
	return rec, nil
}
