// Package config provides configuration management for the delivery service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	WhatsApp WhatsAppConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SecureCookies  bool
}

// SessionConfig holds cart session storage configuration.
type SessionConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisEnabled  bool
	TTL           time.Duration
}

// CheckoutConfig holds checkout flow configuration.
type CheckoutConfig struct {
	Cooldown       time.Duration
	ResetDelay     time.Duration
	DefaultPayment string
}

// WhatsAppConfig holds the order handoff destination.
type WhatsAppConfig struct {
	Phone   string
	BaseURL string
}

// DatabaseConfig holds MongoDB configuration for audit logs.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SecureCookies:  getEnvBool("SECURE_COOKIES", false),
		},
		Session: SessionConfig{
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			RedisEnabled:  getEnvBool("REDIS_ENABLED", false),
			TTL:           getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Checkout: CheckoutConfig{
			Cooldown:       getEnvDuration("CHECKOUT_COOLDOWN", 3*time.Second),
			ResetDelay:     getEnvDuration("CHECKOUT_RESET_DELAY", 800*time.Millisecond),
			DefaultPayment: getEnv("DEFAULT_PAYMENT_METHOD", "Efectivo"),
		},
		WhatsApp: WhatsAppConfig{
			Phone:   getEnv("WHATSAPP_PHONE", "56971864463"),
			BaseURL: getEnv("WHATSAPP_BASE_URL", "https://wa.me"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "el_americano"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Local development origins apply only when CORS_ORIGINS is unset,
	// so deployments control the allow-list completely.
	if s == "" {
		return []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
