package repositories

import (
	"crm/internal/models"
)

// CustomerRepository defines the interface for customer data access.
// Lookups return a models.NotFoundError when nothing matches.
type CustomerRepository interface {
	FindByEmail(email string) (*models.Customer, error)
	FindByPhone(phone string) (*models.Customer, error)
	FindByID(id string) (*models.Customer, error)
	Create(customer *models.Customer) error
	CreateBatch(customers []*models.Customer) error
	List(filter models.CustomerFilter) ([]models.Customer, error)
}
