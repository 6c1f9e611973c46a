package user

import "barberbook/models"

// GetUserByID returns a sanitized user record.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	rec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return sanitize(rec), nil
}

// GetStaff returns the active staff roster, sanitized.
func (s *DefaultUserService) GetStaff() ([]models.User, error) {
	staff, err := s.Repo.GetStaff()
	if err != nil {
		return nil, err
	}
	return sanitizeAll(staff), nil
}

// GetAllUsers returns every account, sanitized. Admin views only.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return sanitizeAll(users), nil
}

func sanitizeAll(users []models.User) []models.User {
	out := make([]models.User, len(users))
	for i := range users {
		out[i] = *sanitize(&users[i])
	}
	return out
}
