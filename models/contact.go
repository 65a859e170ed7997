package models

import "time"

type ContactMessage struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:100;not null" json:"email"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	DateSubmitted time.Time `json:"date_submitted"`
}
