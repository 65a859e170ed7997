package models

import "time"

// CartItem holds one product line in a customer's cart. The composite unique
// index guarantees at most one line per (customer, product) pair even when two
// requests race past the lookup-before-insert check.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_customer_product" json:"customer_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_customer_product" json:"product_id"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}
