package repositories

import (
	"crm/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	FindByID(id string) (*models.Product, error)
	// FindByIDs returns the distinct products matching ids. Unknown ids are
	// simply absent from the result; callers compare counts.
	FindByIDs(ids []string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	List(filter models.ProductFilter) ([]models.Product, error)
}
