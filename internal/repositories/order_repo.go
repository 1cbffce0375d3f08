package repositories

import (
	"crm/internal/models"
)

// OrderRepository defines the interface for order data access. Create
// persists the order together with its product associations as one unit.
type OrderRepository interface {
	FindByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	List(filter models.OrderFilter) ([]models.Order, error)
}
