package repositories

import (
	"sync"

	"crm/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// Stored orders carry their customer and product snapshots, which the
// relational filters evaluate against.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// FindByID returns an order by its ID.
func (r *MockOrderRepository) FindByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, models.NewNotFoundError("order with ID %s not found", id)
	}
	return &order, nil
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders[order.ID] = *order
	return nil
}

// List returns orders matching the filter.
func (r *MockOrderRepository) List(filter models.OrderFilter) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if matchOrder(o, filter) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func matchOrder(o models.Order, f models.OrderFilter) bool {
	if f.TotalAmountFrom != nil && o.TotalAmount < *f.TotalAmountFrom {
		return false
	}
	if f.TotalAmountTo != nil && o.TotalAmount > *f.TotalAmountTo {
		return false
	}
	if f.OrderDateFrom != nil && o.OrderDate.Before(*f.OrderDateFrom) {
		return false
	}
	if f.OrderDateTo != nil && o.OrderDate.After(*f.OrderDateTo) {
		return false
	}
	if f.CustomerName != "" && !containsFold(o.Customer.Name, f.CustomerName) {
		return false
	}
	if f.ProductName != "" {
		found := false
		for _, p := range o.Products {
			if containsFold(p.Name, f.ProductName) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.ProductID != "" {
		found := false
		for _, p := range o.Products {
			if p.ID == f.ProductID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
