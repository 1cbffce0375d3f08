package services

import (
	"fmt"
	"log"
	"time"

	"crm/internal/models"
	"crm/internal/repositories"
	"crm/internal/validation"

	"github.com/google/uuid"
)

// EventPublisher publishes CRM lifecycle events. Satisfied by
// *rabbitmq.Client; a nil publisher disables publishing.
type EventPublisher interface {
	PublishEvent(event string, payload any) error
}

// CustomerService handles business logic related to customers.
type CustomerService struct {
	customerRepo repositories.CustomerRepository
	events       EventPublisher
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo repositories.CustomerRepository, events EventPublisher) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		events:       events,
	}
}

// CreateCustomer validates the input, checks email and phone uniqueness (in
// that order), and persists the customer. A nil or malformed phone fails
// validation. Returns the created customer and a confirmation message.
func (s *CustomerService) CreateCustomer(name, email string, phone *string) (*models.Customer, string, error) {
	if phone == nil || !validation.ValidatePhone(*phone) {
		return nil, "", models.NewValidationError("invalid phone number format")
	}

	if existing, err := s.customerRepo.FindByEmail(email); err == nil && existing != nil {
		return nil, "", models.NewConflictError("a customer with this email already exists")
	} else if err != nil && !models.IsNotFound(err) {
		return nil, "", fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing, err := s.customerRepo.FindByPhone(*phone); err == nil && existing != nil {
		return nil, "", models.NewConflictError("a customer with this phone number already exists")
	} else if err != nil && !models.IsNotFound(err) {
		return nil, "", fmt.Errorf("failed to check phone uniqueness: %w", err)
	}

	customer := &models.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}

	// The repository translates unique-index violations into conflicts, so
	// two concurrent creates with the same email cannot both succeed.
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, "", err
	}

	s.publish("customer.created", customer)

	return customer, "Customer created successfully.", nil
}

// BulkCreateCustomers processes each input independently. Invalid or
// conflicting items contribute an error string; valid items are persisted.
// Partial success is the normal outcome: both lists are always returned.
func (s *CustomerService) BulkCreateCustomers(inputs []models.CustomerInput) ([]models.Customer, []string, error) {
	created := make([]models.Customer, 0, len(inputs))
	errs := make([]string, 0)

	for _, input := range inputs {
		if input.Name == "" || input.Email == "" {
			errs = append(errs, "name and email are required fields")
			continue
		}
		if input.Phone != nil && !validation.ValidatePhone(*input.Phone) {
			errs = append(errs, fmt.Sprintf("invalid phone number format: %s", *input.Phone))
			continue
		}
		// Checked against persisted customers only; earlier items of the
		// same batch are already persisted by the time later ones run.
		if existing, err := s.customerRepo.FindByEmail(input.Email); err == nil && existing != nil {
			errs = append(errs, fmt.Sprintf("a customer with email %s already exists", input.Email))
			continue
		} else if err != nil && !models.IsNotFound(err) {
			errs = append(errs, fmt.Sprintf("failed to check email %s: %v", input.Email, err))
			continue
		}

		customer := &models.Customer{
			ID:        uuid.New().String(),
			Name:      input.Name,
			Email:     input.Email,
			Phone:     input.Phone,
			CreatedAt: time.Now(),
		}
		if err := s.customerRepo.Create(customer); err != nil {
			errs = append(errs, err.Error())
			continue
		}

		s.publish("customer.created", customer)
		created = append(created, *customer)
	}

	return created, errs, nil
}

// ListCustomers retrieves customers matching the filter.
func (s *CustomerService) ListCustomers(filter models.CustomerFilter) ([]models.Customer, error) {
	return s.customerRepo.List(filter)
}

func (s *CustomerService) publish(event string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
