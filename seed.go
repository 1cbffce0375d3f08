package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"crm/internal/models"
	"crm/internal/repositories"
	"crm/internal/services"

	"github.com/brianvoe/gofakeit/v7"
)

// seedDatabase populates the store with fake customers and products, then
// places a handful of orders through the order service so totals and join
// rows are built the same way the API builds them.
func seedDatabase(customerRepo repositories.CustomerRepository, productRepo repositories.ProductRepository, orderService *services.OrderService) {
	customers := make([]*models.Customer, 0, 10)
	for i := 0; i < 10; i++ {
		phone := fmt.Sprintf("+1%d", gofakeit.Number(2000000000, 9999999999))
		customers = append(customers, &models.Customer{
			Name:  gofakeit.Name(),
			Email: gofakeit.Email(),
			Phone: &phone,
		})
	}
	if err := customerRepo.CreateBatch(customers); err != nil {
		log.Printf("Error seeding customers: %v", err)
	} else {
		log.Printf("Seeded %d customers", len(customers))
	}

	products := make([]*models.Product, 0, 20)
	for i := 0; i < 20; i++ {
		product := &models.Product{
			Name:  gofakeit.ProductName(),
			Price: gofakeit.Price(10, 1000),
			Stock: gofakeit.Number(0, 100),
		}
		if err := productRepo.Create(product); err != nil {
			log.Printf("Error seeding product %s: %v", product.Name, err)
			continue
		}
		products = append(products, product)
	}
	log.Printf("Seeded %d products", len(products))

	if len(customers) == 0 || len(products) == 0 {
		log.Println("No customers or products available to seed orders.")
		return
	}

	for i := 0; i < 5; i++ {
		customer := customers[rand.Intn(len(customers))]

		// Pick 1-5 distinct products; duplicates would be rejected.
		shuffled := make([]*models.Product, len(products))
		copy(shuffled, products)
		rand.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		count := 1 + rand.Intn(5)
		productIDs := make([]string, 0, count)
		for _, p := range shuffled[:count] {
			productIDs = append(productIDs, p.ID)
		}

		orderDate := gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now())
		order, err := orderService.CreateOrder(customer.ID, productIDs, &orderDate)
		if err != nil {
			log.Printf("Error seeding order for customer %s: %v", customer.Name, err)
			continue
		}
		log.Printf("Seeded order %s for customer %s with total %.2f", order.ID, customer.Name, order.TotalAmount)
	}
}
