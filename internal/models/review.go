package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `json:"-"`
	Review string `gorm:"type:text;not null" json:"review"`
}
