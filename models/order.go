package models

import "time"

type OrderStatus string

const (
	OrderStatusPaid OrderStatus = "Paid"
)

// Order is an immutable record of one paid line item. Orders are created by
// the checkout conversion only; there is no update or delete path.
type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	OrderRef   string      `gorm:"size:100;uniqueIndex" json:"order_ref"`
	CustomerID uint        `gorm:"not null;index" json:"customer_id"`
	ProductID  uint        `gorm:"not null" json:"product_id"`
	Product    Product     `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int         `gorm:"not null" json:"quantity"`
	Price      float64     `gorm:"not null" json:"price"` // unit price at time of purchase
	Status     OrderStatus `gorm:"type:VARCHAR(20);not null" json:"status"`
	PaymentID  string      `gorm:"size:1000;not null" json:"payment_id"`
	CreatedAt  time.Time   `json:"created_at"`
}
