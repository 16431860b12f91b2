// Package config builds the service configuration once at startup.
package config

import (
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// Config is constructed once in main and passed by reference. Nothing
// mutates it after startup.
type Config struct {
	// Env is "production" or "development". In production upstream error
	// bodies are redacted from responses.
	Env  string
	Port string

	CashfreeEnv     string // "production" or "sandbox"
	ClientID        string
	ClientSecret    string
	FrontendBaseURL string

	AllowedOrigins   []string
	AllowCredentials bool

	// Booking database. Persistence is enabled only when Host is set;
	// otherwise bookings are logged and acknowledged.
	DB DBConfig
}

type DBConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
}

func (c *Config) Production() bool { return c.Env == "production" }

func (c *Config) CashfreeProduction() bool { return c.CashfreeEnv == "production" }

func (c *DBConfig) Enabled() bool { return c.Host != "" }

func Load() *Config {
	cfg := &Config{
		Env:              getenv("APP_ENV", "development"),
		Port:             getenv("PORT", "8000"),
		CashfreeEnv:      getenv("CASHFREE_ENV", "sandbox"),
		ClientID:         os.Getenv("CASHFREE_CLIENT_ID"),
		ClientSecret:     os.Getenv("CASHFREE_CLIENT_SECRET"),
		FrontendBaseURL:  getenv("FRONTEND_BASE_URL", "http://localhost:8006"),
		AllowCredentials: os.Getenv("CORS_ALLOW_CREDENTIALS") == "true",
		DB: DBConfig{
			Host:     os.Getenv("BOOKING_DB_HOST"),
			Port:     getenv("BOOKING_DB_PORT", "5432"),
			Username: os.Getenv("BOOKING_DB_USERNAME"),
			Password: os.Getenv("BOOKING_DB_PASSWORD"),
			Database: os.Getenv("BOOKING_DB_DATABASE"),
			Schema:   getenv("BOOKING_DB_SCHEMA", "public"),
		},
	}

	origins := getenv("ALLOWED_ORIGINS", "http://localhost:8006")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
