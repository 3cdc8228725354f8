package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	JWTExpiry time.Duration

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	PaymentApiURL    string // payment gateway base URL
	PaymentSecretKey string
	PaymentCurrency  string

	EmailSender string
	Password    string // SMTP app password

	SelectionTTLDays int // SelectedClass rows older than this are swept
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "5000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTExpiry: getEnvDuration("JWT_EXPIRY", 2*time.Hour),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ecolearner"),
		DBPort:     getEnv("DB_PORT", "5432"),

		PaymentApiURL:    getEnv("PAYMENT_API_URL", "https://api.stripe.com"),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		PaymentCurrency:  getEnv("PAYMENT_CURRENCY", "usd"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		SelectionTTLDays: getEnvInt("SELECTION_TTL_DAYS", 30),
	}

	// Validate critical configuration
	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if cfg.PaymentSecretKey == "" {
		log.Println("Warning: PAYMENT_SECRET_KEY is empty. Payment intents will fail.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvDuration retrieves an environment variable as a duration (e.g. "2h")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
