package repositories

import (
	"sync"
	"time"

	"crm/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// FindByID returns a product by its ID.
func (r *MockProductRepository) FindByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, models.NewNotFoundError("product with ID %s not found", id)
	}
	return &product, nil
}

// FindByIDs returns the distinct products matching ids. The map lookup
// deduplicates repeated ids just like the primary key does in SQL.
func (r *MockProductRepository) FindByIDs(ids []string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(ids))
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return models.NewNotFoundError("product with ID %s not found for update", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// List returns products matching the filter.
func (r *MockProductRepository) List(filter models.ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchProduct(p, filter) {
			products = append(products, p)
		}
	}
	return products, nil
}

func matchProduct(p models.Product, f models.ProductFilter) bool {
	if f.Name != "" && !containsFold(p.Name, f.Name) {
		return false
	}
	if f.PriceFrom != nil && p.Price < *f.PriceFrom {
		return false
	}
	if f.PriceTo != nil && p.Price > *f.PriceTo {
		return false
	}
	if f.StockFrom != nil && p.Stock < *f.StockFrom {
		return false
	}
	if f.StockTo != nil && p.Stock > *f.StockTo {
		return false
	}
	if f.LowStock && p.Stock >= models.LowStockThreshold {
		return false
	}
	return true
}
