package models

import "time"

type Product struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName    string    `gorm:"size:100;not null" json:"product_name"`
	CurrentPrice   float64   `gorm:"not null" json:"current_price"`
	PreviousPrice  float64   `json:"previous_price"`
	InStock        int       `json:"in_stock"`
	ProductPicture string    `gorm:"size:255" json:"product_picture"`
	FlashSale      bool      `gorm:"default:false" json:"flash_sale"`
	DateAdded      time.Time `json:"date_added"`
	CategoryID     uint      `gorm:"not null;index" json:"category_id"`
	Category       Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
