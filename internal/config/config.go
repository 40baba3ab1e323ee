package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultAdminUsername is used when ADMIN_USERNAME is unset.
	DefaultAdminUsername = "Admin"

	// DevFallbackPassword is hashed at startup when no ADMIN_PASSWORD_HASH is
	// configured. Development only.
	DevFallbackPassword = "Rangwala"

	envProduction = "production"
)

// Config holds the application configuration.
type Config struct {
	ServerPort          int
	Env                 string
	LogLevel            string
	AdminUsername       string
	AdminPasswordHash   string // Never log this
	BcryptCost          int
	CORSAllowedOrigins  []string
	MaxConcurrentHashes int
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == envProduction
}

// LoadEnv loads variables from a .env file in the working directory, if one exists.
// Variables already present in the environment are not overridden.
func LoadEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "3000"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid PORT")
	}
	if port <= 0 || port > 65535 {
		return nil, errors.Errorf("PORT out of range: %d", port)
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil {
		return nil, errors.Wrap(err, "invalid BCRYPT_COST")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}

	maxHashes, err := strconv.Atoi(getEnv("MAX_CONCURRENT_HASHES", strconv.Itoa(runtime.NumCPU())))
	if err != nil {
		return nil, errors.Wrap(err, "invalid MAX_CONCURRENT_HASHES")
	}
	if maxHashes < 1 {
		return nil, errors.Errorf("MAX_CONCURRENT_HASHES must be positive, got %d", maxHashes)
	}

	username := strings.TrimSpace(getEnv("ADMIN_USERNAME", DefaultAdminUsername))
	if username == "" {
		username = DefaultAdminUsername
	}

	return &Config{
		ServerPort:          port,
		Env:                 getEnv("APP_ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		AdminUsername:       username,
		AdminPasswordHash:   strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		BcryptCost:          cost,
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MaxConcurrentHashes: maxHashes,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
