package models

import "time"

// Order represents a customer order referencing one customer and one or more
// products through the order_products join table. TotalAmount is the sum of
// the referenced products' prices captured at creation time; later price
// changes never touch it.
type Order struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CustomerID  string    `json:"customer_id" gorm:"type:varchar(36);index" validate:"required"`
	Customer    Customer  `json:"customer" gorm:"foreignKey:CustomerID"`
	Products    []Product `json:"products" gorm:"many2many:order_products"`
	TotalAmount float64   `json:"total_amount" gorm:"type:decimal(12,2)"`
	OrderDate   time.Time `json:"order_date" gorm:"index"`
}
