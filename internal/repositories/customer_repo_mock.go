package repositories

import (
	"strings"
	"sync"
	"time"

	"crm/internal/models"

	"github.com/google/uuid"
)

// MockCustomerRepository is an in-memory implementation of
// CustomerRepository. It enforces the same email/phone uniqueness the
// database indexes do, so service behavior matches across backends.
type MockCustomerRepository struct {
	customers map[string]models.Customer
	mu        sync.RWMutex
}

// NewMockCustomerRepository creates a new instance of MockCustomerRepository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]models.Customer),
	}
}

// FindByEmail returns the customer with the given email.
func (r *MockCustomerRepository) FindByEmail(email string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.Email == email {
			customer := c
			return &customer, nil
		}
	}
	return nil, models.NewNotFoundError("customer with email %s not found", email)
}

// FindByPhone returns the customer with the given phone number.
func (r *MockCustomerRepository) FindByPhone(phone string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.Phone != nil && *c.Phone == phone {
			customer := c
			return &customer, nil
		}
	}
	return nil, models.NewNotFoundError("customer with phone %s not found", phone)
}

// FindByID returns the customer with the given ID.
func (r *MockCustomerRepository) FindByID(id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, models.NewNotFoundError("customer with ID %s not found", id)
	}
	return &customer, nil
}

// Create adds a new customer, rejecting duplicate emails and phones the way
// the database unique indexes would.
func (r *MockCustomerRepository) Create(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createLocked(customer)
}

// CreateBatch adds customers one by one, stopping at the first conflict.
func (r *MockCustomerRepository) CreateBatch(customers []*models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range customers {
		if err := r.createLocked(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *MockCustomerRepository) createLocked(customer *models.Customer) error {
	for _, existing := range r.customers {
		if existing.Email == customer.Email {
			return models.NewConflictError("a customer with this email or phone already exists")
		}
		if existing.Phone != nil && customer.Phone != nil && *existing.Phone == *customer.Phone {
			return models.NewConflictError("a customer with this email or phone already exists")
		}
	}
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}
	r.customers[customer.ID] = *customer
	return nil
}

// List returns customers matching the filter.
func (r *MockCustomerRepository) List(filter models.CustomerFilter) ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if matchCustomer(c, filter) {
			customers = append(customers, c)
		}
	}
	return customers, nil
}

func matchCustomer(c models.Customer, f models.CustomerFilter) bool {
	if f.Name != "" && !containsFold(c.Name, f.Name) {
		return false
	}
	if f.Email != "" && !containsFold(c.Email, f.Email) {
		return false
	}
	if f.CreatedAtFrom != nil && c.CreatedAt.Before(*f.CreatedAtFrom) {
		return false
	}
	if f.CreatedAtTo != nil && c.CreatedAt.After(*f.CreatedAtTo) {
		return false
	}
	if f.PhoneStartsWith != "" {
		// Prefix matches and customers without a phone both pass.
		if c.Phone != nil && !strings.HasPrefix(*c.Phone, f.PhoneStartsWith) {
			return false
		}
	}
	return true
}

// containsFold reports whether sub occurs in s, ignoring case.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
