package repositories

import (
	"errors"
	"fmt"
	"strings"

	"crm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// FindByID retrieves a single order with its customer and products.
func (r *GORMOrderRepository) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Customer").Preload("Products").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create inserts the order row and its order_products join rows in one
// transaction. The referenced customer and products must already exist;
// their rows are never written here.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Customer", "Products.*").Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// List retrieves orders matching the filter, with customer and products
// preloaded. Relational conditions run as subqueries over the join table so
// an order with several matching products still appears once.
func (r *GORMOrderRepository) List(filter models.OrderFilter) ([]models.Order, error) {
	q := r.db.Model(&models.Order{}).Preload("Customer").Preload("Products")
	if filter.TotalAmountFrom != nil {
		q = q.Where("total_amount >= ?", *filter.TotalAmountFrom)
	}
	if filter.TotalAmountTo != nil {
		q = q.Where("total_amount <= ?", *filter.TotalAmountTo)
	}
	if filter.OrderDateFrom != nil {
		q = q.Where("order_date >= ?", *filter.OrderDateFrom)
	}
	if filter.OrderDateTo != nil {
		q = q.Where("order_date <= ?", *filter.OrderDateTo)
	}
	if filter.CustomerName != "" {
		q = q.Where("customer_id IN (?)",
			r.db.Model(&models.Customer{}).Select("id").
				Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.CustomerName)+"%"))
	}
	if filter.ProductName != "" {
		q = q.Where("orders.id IN (?)",
			r.db.Table("order_products").Select("order_id").
				Joins("JOIN products ON products.id = order_products.product_id").
				Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(filter.ProductName)+"%"))
	}
	if filter.ProductID != "" {
		q = q.Where("orders.id IN (?)",
			r.db.Table("order_products").Select("order_id").
				Where("product_id = ?", filter.ProductID))
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
