package services_test

import (
	"testing"
	"time"

	"crm/internal/models"
	"crm/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(filter models.OrderFilter) ([]models.Order, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func newOrderServiceMocks() (*services.OrderService, *MockOrderRepository, *MockCustomerRepository, *MockProductRepository) {
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, customerRepo, productRepo, nil)
	return service, orderRepo, customerRepo, productRepo
}

func TestOrderService_CreateOrder(t *testing.T) {
	service, orderRepo, customerRepo, productRepo := newOrderServiceMocks()

	customer := &models.Customer{ID: "cust-1", Name: "Alice", Email: "alice@example.com"}
	products := []models.Product{
		{ID: "prod-1", Name: "Laptop", Price: 1200.00, Stock: 10},
		{ID: "prod-2", Name: "Mouse", Price: 25.00, Stock: 50},
	}

	customerRepo.On("FindByID", "cust-1").Return(customer, nil).Once()
	productRepo.On("FindByIDs", []string{"prod-1", "prod-2"}).Return(products, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.CreateOrder("cust-1", []string{"prod-1", "prod-2"}, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "cust-1", order.CustomerID)
	assert.Equal(t, 1225.00, order.TotalAmount)
	assert.Len(t, order.Products, 2)
	assert.WithinDuration(t, time.Now(), order.OrderDate, time.Minute)
	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_ExplicitOrderDate(t *testing.T) {
	service, orderRepo, customerRepo, productRepo := newOrderServiceMocks()

	orderDate := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	customerRepo.On("FindByID", "cust-1").Return(&models.Customer{ID: "cust-1"}, nil).Once()
	productRepo.On("FindByIDs", []string{"prod-1"}).
		Return([]models.Product{{ID: "prod-1", Price: 10.00}}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.CreateOrder("cust-1", []string{"prod-1"}, &orderDate)
	assert.NoError(t, err)
	assert.Equal(t, orderDate, order.OrderDate)
}

func TestOrderService_CreateOrder_EmptyProductIDs(t *testing.T) {
	service, orderRepo, customerRepo, _ := newOrderServiceMocks()

	order, err := service.CreateOrder("cust-1", nil, nil)
	assert.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Contains(t, err.Error(), "at least one product ID")
	assert.Nil(t, order)
	customerRepo.AssertNotCalled(t, "FindByID", mock.Anything)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_UnknownCustomer(t *testing.T) {
	service, orderRepo, customerRepo, productRepo := newOrderServiceMocks()

	customerRepo.On("FindByID", "ghost").
		Return(nil, models.NewNotFoundError("customer with ID ghost not found")).Once()

	order, err := service.CreateOrder("ghost", []string{"prod-1"}, nil)
	assert.Error(t, err)
	assert.True(t, models.IsNotFound(err))
	assert.Contains(t, err.Error(), "invalid customer ID")
	assert.Nil(t, order)
	productRepo.AssertNotCalled(t, "FindByIDs", mock.Anything)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_NoProductsResolve(t *testing.T) {
	service, orderRepo, customerRepo, productRepo := newOrderServiceMocks()

	customerRepo.On("FindByID", "cust-1").Return(&models.Customer{ID: "cust-1"}, nil).Once()
	productRepo.On("FindByIDs", []string{"ghost-1", "ghost-2"}).
		Return([]models.Product{}, nil).Once()

	order, err := service.CreateOrder("cust-1", []string{"ghost-1", "ghost-2"}, nil)
	assert.Error(t, err)
	assert.True(t, models.IsNotFound(err))
	assert.Contains(t, err.Error(), "no products found")
	assert.Nil(t, order)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_PartialProductMatch(t *testing.T) {
	service, orderRepo, customerRepo, productRepo := newOrderServiceMocks()

	customerRepo.On("FindByID", "cust-1").Return(&models.Customer{ID: "cust-1"}, nil).Once()
	productRepo.On("FindByIDs", []string{"prod-1", "ghost"}).
		Return([]models.Product{{ID: "prod-1", Price: 10.00}}, nil).Once()

	order, err := service.CreateOrder("cust-1", []string{"prod-1", "ghost"}, nil)
	assert.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Contains(t, err.Error(), "some product IDs are invalid")
	assert.Nil(t, order)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// Duplicate ids are not deduplicated before the count comparison: storage
// resolves one distinct product for ["prod-1", "prod-1"], which differs from
// the requested count of two and is rejected.
func TestOrderService_CreateOrder_DuplicateProductIDs(t *testing.T) {
	service, orderRepo, customerRepo, productRepo := newOrderServiceMocks()

	customerRepo.On("FindByID", "cust-1").Return(&models.Customer{ID: "cust-1"}, nil).Once()
	productRepo.On("FindByIDs", []string{"prod-1", "prod-1"}).
		Return([]models.Product{{ID: "prod-1", Price: 10.00}}, nil).Once()

	order, err := service.CreateOrder("cust-1", []string{"prod-1", "prod-1"}, nil)
	assert.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Nil(t, order)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// The total is frozen at creation time: changing a product's price after the
// order exists must not change the recorded total.
func TestOrderService_CreateOrder_TotalFrozenAtCreation(t *testing.T) {
	service, orderRepo, customerRepo, productRepo := newOrderServiceMocks()

	product := models.Product{ID: "prod-1", Name: "Laptop", Price: 1200.00, Stock: 10}
	customerRepo.On("FindByID", "cust-1").Return(&models.Customer{ID: "cust-1"}, nil).Once()
	productRepo.On("FindByIDs", []string{"prod-1"}).
		Return([]models.Product{product}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.CreateOrder("cust-1", []string{"prod-1"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1200.00, order.TotalAmount)

	// Simulate a later price change; the persisted total is untouched.
	product.Price = 999.00
	assert.Equal(t, 1200.00, order.TotalAmount)
}

func TestOrderService_CreateOrder_PublishesEvent(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewOrderService(orderRepo, customerRepo, productRepo, mockEvents)

	customerRepo.On("FindByID", "cust-1").Return(&models.Customer{ID: "cust-1"}, nil).Once()
	productRepo.On("FindByIDs", []string{"prod-1"}).
		Return([]models.Product{{ID: "prod-1", Price: 10.00}}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockEvents.On("PublishEvent", "order.created", mock.Anything).Return(nil).Once()

	_, err := service.CreateOrder("cust-1", []string{"prod-1"}, nil)
	assert.NoError(t, err)
	mockEvents.AssertExpectations(t)
}

func TestOrderService_ListOrders(t *testing.T) {
	service, orderRepo, _, _ := newOrderServiceMocks()

	expected := []models.Order{{ID: "order-1", TotalAmount: 100.00}}
	from := 50.00
	filter := models.OrderFilter{TotalAmountFrom: &from}
	orderRepo.On("List", filter).Return(expected, nil).Once()

	orders, err := service.ListOrders(filter)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	orderRepo.AssertExpectations(t)
}
