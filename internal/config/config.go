package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"penjualan_admin/internal/utils"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	UI      UIConfig
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port    string
	GinMode string // debug, release or test; empty leaves gin's default
}

// BackendConfig points at the PHP API that owns all data
type BackendConfig struct {
	BaseURL      string // e.g. http://localhost/backend-penjualan
	ImageBaseURL string // prefix for product image file names
	Timeout      time.Duration
}

// SessionConfig contains admin session cookie settings
type SessionConfig struct {
	Secret          string
	ExpirationHours int64
	CookieSecure    bool
}

// UIConfig contains table defaults
type UIConfig struct {
	DefaultPageSize int
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	timeoutSeconds, err := getEnvInt("BACKEND_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	expirationHours, err := getEnvInt("SESSION_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}
	pageSize, err := getEnvInt("DEFAULT_PAGE_SIZE", 5)
	if err != nil {
		return nil, err
	}
	cookieSecure, err := getEnvBool("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost/backend-penjualan"), "/")
	imageBaseURL := getEnv("IMAGE_BASE_URL", baseURL+"/gambar/")
	if !strings.HasSuffix(imageBaseURL, "/") {
		imageBaseURL += "/"
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			GinMode: getEnv("GIN_MODE", ""),
		},
		Backend: BackendConfig{
			BaseURL:      baseURL,
			ImageBaseURL: imageBaseURL,
			Timeout:      time.Duration(timeoutSeconds) * time.Second,
		},
		Session: SessionConfig{
			Secret:          getEnv("SESSION_SECRET", ""),
			ExpirationHours: int64(expirationHours),
			CookieSecure:    cookieSecure,
		},
		UI: UIConfig{
			DefaultPageSize: pageSize,
		},
	}

	// Validate critical settings
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is not set")
	}
	if cfg.Backend.Timeout <= 0 {
		return nil, fmt.Errorf("BACKEND_TIMEOUT_SECONDS must be positive, got %d", timeoutSeconds)
	}
	if cfg.Session.ExpirationHours <= 0 {
		return nil, fmt.Errorf("SESSION_EXPIRATION_HOURS must be positive, got %d", expirationHours)
	}
	if !utils.IsPageSize(cfg.UI.DefaultPageSize) {
		return nil, fmt.Errorf("DEFAULT_PAGE_SIZE must be one of %v, got %d", utils.PageSizes, pageSize)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		return b, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config with the session secret masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, Backend: %s, Images: %s, Timeout: %s, Session: *** (masked) *** %dh, PageSize: %d}",
		c.Server.Port, c.Backend.BaseURL, c.Backend.ImageBaseURL, c.Backend.Timeout, c.Session.ExpirationHours, c.UI.DefaultPageSize)
}
