package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration // per-candidate network attempt timeout
	HealthTimeout  time.Duration // connectivity probe timeout
	SessionTTL     time.Duration
	SessionFile    string // path of the durable session store
	RateLimitRPS   float64
	RateLimitBurst int
	Port           string // demo backend listen port
	JWTSecret      string // demo backend token signing secret
	AllowedOrigins string // comma-separated CORS origins for the demo backend
	Environment    string // development, staging, production
}

// Load loads configuration from environment variables and validates for production
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 5*time.Second),
		HealthTimeout:  getDuration("HEALTH_TIMEOUT", 3*time.Second),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		SessionFile:    getEnv("SESSION_FILE", defaultSessionFile()),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 40),
		Port:           getEnv("PORT", "5000"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}

	// Validate production configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	return cfg
}

// Validate checks configuration for security and correctness
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive (got %s)", c.RequestTimeout)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive (got %s)", c.SessionTTL)
	}

	// Production environment requires strong secrets
	if c.IsProduction() {
		if c.JWTSecret == "" || c.JWTSecret == "change-this-in-production" {
			return fmt.Errorf("JWT_SECRET must be set to a strong random value in production")
		}

		if len(c.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 characters in production (got %d)", len(c.JWTSecret))
		}

		if !strings.HasPrefix(c.APIBaseURL, "https://") {
			log.Println("WARNING: API_BASE_URL should use HTTPS in production")
		}
	} else if c.JWTSecret == "" {
		// Development/staging: provide default if not set
		c.JWTSecret = "dev-secret-not-for-production"
		log.Println("Using default JWT_SECRET for development")
	}

	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev" || c.Environment == ""
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".azushop-session.json"
	}
	return dir + "/azushop/session.json"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid number for %s: %q, using default %g", key, value, defaultValue)
		return defaultValue
	}
	return f
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
