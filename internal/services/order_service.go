package services

import (
	"fmt"
	"log"
	"time"

	"crm/internal/models"
	"crm/internal/repositories"

	"github.com/google/uuid"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	productRepo  repositories.ProductRepository
	events       EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, customerRepo repositories.CustomerRepository, productRepo repositories.ProductRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		events:       events,
	}
}

// CreateOrder resolves the customer and products, freezes the total at the
// sum of the resolved products' current prices, and persists the order with
// its associations. Duplicate ids in productIDs are not deduplicated before
// the count comparison, so they fail the same way unknown ids do.
func (s *OrderService) CreateOrder(customerID string, productIDs []string, orderDate *time.Time) (*models.Order, error) {
	if len(productIDs) == 0 {
		return nil, models.NewValidationError("at least one product ID must be provided")
	}

	customer, err := s.customerRepo.FindByID(customerID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundError("invalid customer ID")
		}
		return nil, fmt.Errorf("failed to resolve customer %s: %w", customerID, err)
	}

	products, err := s.productRepo.FindByIDs(productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	if len(products) == 0 {
		return nil, models.NewNotFoundError("no products found with the provided IDs")
	}
	if len(products) != len(productIDs) {
		return nil, models.NewValidationError("some product IDs are invalid or do not exist")
	}

	var totalAmount float64
	for _, p := range products {
		totalAmount += p.Price
	}

	date := time.Now()
	if orderDate != nil {
		date = *orderDate
	}

	order := &models.Order{
		ID:          uuid.New().String(),
		CustomerID:  customer.ID,
		Customer:    *customer,
		Products:    products,
		TotalAmount: totalAmount,
		OrderDate:   date,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.publishOrderCreated(order)

	return order, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.FindByID(id)
}

// ListOrders retrieves orders matching the filter.
func (s *OrderService) ListOrders(filter models.OrderFilter) ([]models.Order, error) {
	return s.orderRepo.List(filter)
}

func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.events == nil {
		log.Println("Event publisher is not configured. Skipping order.created publication.")
		return
	}
	payload := map[string]any{
		"orderID":    order.ID,
		"customerID": order.CustomerID,
		"total":      order.TotalAmount,
		"orderDate":  order.OrderDate,
	}
	if err := s.events.PublishEvent("order.created", payload); err != nil {
		log.Printf("Warning: Failed to publish order.created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order.created event for order %s", order.ID)
	}
}
