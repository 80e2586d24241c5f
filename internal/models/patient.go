package models

import "time"

type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Age         int    `gorm:"not null" json:"age"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`
	Image       string `gorm:"size:200" json:"image"`
}
