package models

import "time"

// LowStockThreshold is the stock level below which a product counts as low
// stock for ProductFilter.LowStock.
const LowStockThreshold = 10

// CustomerFilter narrows customer list queries. Zero-value fields impose no
// constraint; all set fields combine with logical AND.
type CustomerFilter struct {
	Name            string     // case-insensitive substring
	Email           string     // case-insensitive substring
	CreatedAtFrom   *time.Time // inclusive
	CreatedAtTo     *time.Time // inclusive
	PhoneStartsWith string     // prefix match, keeps customers without a phone
}

// ProductFilter narrows product list queries.
type ProductFilter struct {
	Name      string
	PriceFrom *float64
	PriceTo   *float64
	StockFrom *int
	StockTo   *int
	LowStock  bool // stock < LowStockThreshold
}

// OrderFilter narrows order list queries. CustomerName and ProductName match
// against the related entities.
type OrderFilter struct {
	TotalAmountFrom *float64
	TotalAmountTo   *float64
	OrderDateFrom   *time.Time
	OrderDateTo     *time.Time
	CustomerName    string // case-insensitive substring of the customer's name
	ProductName     string // case-insensitive substring of any product's name
	ProductID       string // orders containing this product
}
