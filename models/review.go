package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserName   string    `gorm:"size:100;not null" json:"user_name"`
	UserType   string    `gorm:"size:100;default:Customer" json:"user_type"`
	Rating     int       `gorm:"not null" json:"rating"`
	ReviewText string    `gorm:"type:text;not null" json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}
