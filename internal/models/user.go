package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IsAdmin reports whether a role grants access to the admin routes.
func IsAdmin(role string) bool {
	return role == RoleAdmin
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username       string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email          string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	Role           string `gorm:"size:20;default:user;not null" json:"role"`
	EmailConfirmed bool   `gorm:"default:false" json:"email_confirmed"`
}
