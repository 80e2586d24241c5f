package models

import "time"

// Appointment is a booking request. UserID is nil for anonymous bookings;
// a dentist is always required.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      *uint  `json:"user_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Age         int    `gorm:"not null" json:"age"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`
	Reason      string `gorm:"type:text;not null" json:"reason"`
	DentistID   uint   `gorm:"not null" json:"dentist_id"`
}
