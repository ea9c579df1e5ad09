package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN string

	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	WHATSAPP_NUMBER string
	PRICE_LOCALE    string
	PRICE_SYMBOL    string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")

	WHATSAPP_NUMBER = getEnv("WHATSAPP_NUMBER", "1234567890")
	PRICE_LOCALE = getEnv("PRICE_LOCALE", "en-IN")
	PRICE_SYMBOL = getEnv("PRICE_SYMBOL", "₹")

	// Google sign-in is optional; the auth handlers reject requests when unset.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
