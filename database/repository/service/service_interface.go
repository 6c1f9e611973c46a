package serviceRepo

import "barberbook/models"

// ServiceRepository defines methods for catalogue data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAllActive retrieves every active service in the catalogue.
	GetAllActive() ([]models.Service, error)
	// GetAll retrieves every service including inactive ones (admin views).
	GetAll() ([]models.Service, error)
	// Create inserts a new service.
	Create(svc *models.Service) error
	// Update replaces an existing service.
	Update(svc *models.Service) error
	// Delete removes a service by its ID.
	Delete(id string) error
}
