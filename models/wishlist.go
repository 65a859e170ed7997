package models

type Wishlist struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CustomerID uint    `gorm:"not null;uniqueIndex:idx_wishlist_customer_product" json:"customer_id"`
	ProductID  uint    `gorm:"not null;uniqueIndex:idx_wishlist_customer_product" json:"product_id"`
	Product    Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity"`
}
