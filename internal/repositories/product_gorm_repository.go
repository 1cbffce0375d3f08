package repositories

import (
	"errors"
	"fmt"
	"strings"

	"crm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// FindByIDs retrieves the distinct products matching ids. The primary key
// deduplicates repeated ids, so the result can be shorter than the request.
func (r *GORMProductRepository) FindByIDs(ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by IDs: %w", err)
	}
	return products, nil
}

// Create inserts a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("product with ID %s not found for update", product.ID)
	}
	return nil
}

// List retrieves products matching the filter.
func (r *GORMProductRepository) List(filter models.ProductFilter) ([]models.Product, error) {
	q := r.db.Model(&models.Product{})
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.PriceFrom != nil {
		q = q.Where("price >= ?", *filter.PriceFrom)
	}
	if filter.PriceTo != nil {
		q = q.Where("price <= ?", *filter.PriceTo)
	}
	if filter.StockFrom != nil {
		q = q.Where("stock >= ?", *filter.StockFrom)
	}
	if filter.StockTo != nil {
		q = q.Where("stock <= ?", *filter.StockTo)
	}
	if filter.LowStock {
		q = q.Where("stock < ?", models.LowStockThreshold)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
