package models

import "time"

// Customer represents a CRM customer.
// Email and phone carry unique indexes so the database enforces uniqueness
// even under concurrent creates; the services' lookups only provide the
// friendly error ordering.
type Customer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone     *string   `json:"phone,omitempty" gorm:"uniqueIndex;type:varchar(20)"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerInput is a single item of a bulk-create request.
type CustomerInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}
