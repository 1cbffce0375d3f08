package services

import (
	"time"

	"crm/internal/models"
	"crm/internal/repositories"
	"crm/internal/validation"

	"github.com/google/uuid"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct validates price and stock bounds and persists the product.
// Returns the created product and a confirmation message.
func (s *ProductService) CreateProduct(name string, price float64, stock int) (*models.Product, string, error) {
	if !validation.ValidatePrice(price) {
		return nil, "", models.NewValidationError("price must be greater than zero")
	}
	if !validation.ValidateStock(stock) {
		return nil, "", models.NewValidationError("stock cannot be negative")
	}

	product := &models.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(product); err != nil {
		return nil, "", err
	}

	return product, "Product created successfully.", nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.FindByID(id)
}

// ListProducts retrieves products matching the filter.
func (s *ProductService) ListProducts(filter models.ProductFilter) ([]models.Product, error) {
	return s.repo.List(filter)
}
