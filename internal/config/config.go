package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	SecretKey   string
	BaseURL     string
	CORSOrigins []string

	RedisAddr     string
	RedisPassword string

	SMTPHost  string
	SMTPUser  string
	SMTPPass  string
	FromEmail string

	UploadDir string
}

// Load reads configuration from the environment, failing fast on the values
// the server cannot run without.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		BaseURL:       getenv("BASE_URL", "http://localhost:8080"),
		CORSOrigins:   strings.Split(getenv("CORS_ORIGINS", "http://localhost:3000"), ","),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		FromEmail:     os.Getenv("FROM_EMAIL"),
		UploadDir:     getenv("UPLOAD_DIR", "static/uploads"),
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN required")
	}
	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY required")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
