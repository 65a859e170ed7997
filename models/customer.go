package models

import "time"

// Customer accounts are created and authenticated by the identity service;
// this API only references them from carts, orders and wishlists.
type Customer struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string    `gorm:"size:100;uniqueIndex" json:"email"`
	Username   string    `gorm:"size:100" json:"username"`
	DateJoined time.Time `json:"date_joined"`
}
