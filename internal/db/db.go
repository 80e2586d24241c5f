package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dentalcare/internal/models"
)

func Init(dsn string) *gorm.DB {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect db:", err)
	}
	if err := Migrate(conn); err != nil {
		log.Fatal("auto migrate failed:", err)
	}
	return conn
}

// Migrate creates or updates the clinic schema.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Dentist{},
		&models.Patient{},
		&models.Appointment{},
		&models.Review{},
	)
}
