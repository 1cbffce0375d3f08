package repositories

import (
	"errors"
	"fmt"
	"strings"

	"crm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// FindByEmail retrieves a customer by email.
func (r *GORMCustomerRepository) FindByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("customer with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get customer by email %s: %w", email, err)
	}
	return &customer, nil
}

// FindByPhone retrieves a customer by phone number.
func (r *GORMCustomerRepository) FindByPhone(phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("customer with phone %s not found", phone)
		}
		return nil, fmt.Errorf("failed to get customer by phone %s: %w", phone, err)
	}
	return &customer, nil
}

// FindByID retrieves a customer by ID.
func (r *GORMCustomerRepository) FindByID(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("customer with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get customer by ID %s: %w", id, err)
	}
	return &customer, nil
}

// Create inserts a new customer. The unique indexes on email and phone are
// the authoritative uniqueness check; a duplicate-key error surfaces as a
// models.ConflictError so concurrent creates cannot slip past the services'
// pre-checks.
func (r *GORMCustomerRepository) Create(customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if err := r.db.Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("a customer with this email or phone already exists")
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// CreateBatch inserts customers in a single statement.
func (r *GORMCustomerRepository) CreateBatch(customers []*models.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	for _, c := range customers {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
	}
	if err := r.db.Create(customers).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("a customer with this email or phone already exists")
		}
		return fmt.Errorf("failed to create customers: %w", err)
	}
	return nil
}

// List retrieves customers matching the filter. All set conditions combine
// with AND; no ordering is applied.
func (r *GORMCustomerRepository) List(filter models.CustomerFilter) ([]models.Customer, error) {
	q := r.db.Model(&models.Customer{})
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.CreatedAtFrom != nil {
		q = q.Where("created_at >= ?", *filter.CreatedAtFrom)
	}
	if filter.CreatedAtTo != nil {
		q = q.Where("created_at <= ?", *filter.CreatedAtTo)
	}
	if filter.PhoneStartsWith != "" {
		// Customers without a phone are kept alongside prefix matches.
		q = q.Where("phone LIKE ? OR phone IS NULL", filter.PhoneStartsWith+"%")
	}

	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
