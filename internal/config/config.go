package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	CORS        CORSConfig
	Session     SessionConfig
	Dashboard   DashboardConfig
	Maintenance MaintenanceConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig holds the client session settings.
type SessionConfig struct {
	// Key is the base64 Fernet key sealing session cookies. Empty means a
	// key is generated at startup and sessions do not survive restarts.
	Key         string
	CookieName  string
	IdleTimeout time.Duration
	MaxAge      time.Duration
}

// DashboardConfig holds the rendering and interaction settings.
type DashboardConfig struct {
	ChartContainerWidth int
	ScrollBreakpoint    int
	ScrollDelay         time.Duration
	// DefaultViewport is assumed when the client sends no viewport hint.
	DefaultViewport int
}

// MaintenanceConfig holds the settings of the periodic cleanup jobs.
type MaintenanceConfig struct {
	Schedule            string
	PreferenceRetention time.Duration
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	p := &parser{}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/fund_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Session: SessionConfig{
			Key:         os.Getenv("SESSION_KEY"),
			CookieName:  getEnv("SESSION_COOKIE", "fund_dashboard_session"),
			IdleTimeout: p.duration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			MaxAge:      p.duration("SESSION_MAX_AGE", 720*time.Hour),
		},
		Dashboard: DashboardConfig{
			ChartContainerWidth: p.positiveInt("DASHBOARD_CHART_CONTAINER_WIDTH", 800),
			ScrollBreakpoint:    p.positiveInt("DASHBOARD_SCROLL_BREAKPOINT", 1024),
			ScrollDelay:         p.duration("DASHBOARD_SCROLL_DELAY", 100*time.Millisecond),
			DefaultViewport:     p.positiveInt("DASHBOARD_DEFAULT_VIEWPORT", 1280),
		},
		Maintenance: MaintenanceConfig{
			Schedule:            getEnv("MAINTENANCE_SCHEDULE", "@every 10m"),
			PreferenceRetention: p.duration("PREFERENCE_RETENTION", 2160*time.Hour),
		},
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parser collects conversion errors so Load reports every bad variable at once.
type parser struct {
	errs []error
}

func (p *parser) duration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		p.errs = append(p.errs, fmt.Errorf("%s must be a positive duration, got %q", key, value))
		return defaultValue
	}
	return d
}

func (p *parser) positiveInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		p.errs = append(p.errs, fmt.Errorf("%s must be a positive integer, got %q", key, value))
		return defaultValue
	}
	return n
}
