package handlers

import (
	"fmt"
	"log"

	"crm/internal/models"
	"crm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Get("/", h.HandleListCustomers)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Post("/bulk", h.HandleBulkCreateCustomers)
}

// CreateCustomerRequest represents the request body for creating a customer.
type CreateCustomerRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Phone *string `json:"phone"`
}

// HandleCreateCustomer creates a single customer.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create customer request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	customer, message, err := h.service.CreateCustomer(req.Name, req.Email, req.Phone)
	if err != nil {
		log.Printf("Error creating customer: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create customer",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  message,
		"customer": customer,
	})
}

// HandleBulkCreateCustomers creates customers from a JSON array, collecting
// per-item errors instead of failing the whole request.
func (h *CustomerHandler) HandleBulkCreateCustomers(c *fiber.Ctx) error {
	var inputs []models.CustomerInput
	if err := c.BodyParser(&inputs); err != nil {
		log.Printf("Error parsing bulk create request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body: expected a JSON array of customers",
			"error":   err.Error(),
		})
	}

	created, itemErrors, err := h.service.BulkCreateCustomers(inputs)
	if err != nil {
		log.Printf("Error bulk creating customers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not process bulk customer creation",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"customers": created,
		"errors":    itemErrors,
	})
}

// HandleListCustomers lists customers matching the query-parameter filters.
func (h *CustomerHandler) HandleListCustomers(c *fiber.Ctx) error {
	createdAtFrom, err := parseTimeQuery(c, "createdAtFrom")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	createdAtTo, err := parseTimeQuery(c, "createdAtTo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	filter := models.CustomerFilter{
		Name:            c.Query("name"),
		Email:           c.Query("email"),
		CreatedAtFrom:   createdAtFrom,
		CreatedAtTo:     createdAtTo,
		PhoneStartsWith: c.Query("phoneStartsWith"),
	}

	customers, err := h.service.ListCustomers(filter)
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve customers",
			"error":   err.Error(),
		})
	}
	return c.JSON(customers)
}
