package config

import (
	"fmt"
	"os"
	"strconv"
)

// Named environment profiles. They differ only in the default debug flag.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration. It is built once at startup and
// passed by reference to every component that needs it.
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Logger  LoggerConfig
	Admin   AdminConfig
	PayPal  PayPalConfig
	Catalog CatalogConfig
}

// AppConfig holds the environment profile and application-level settings.
type AppConfig struct {
	Environment string
	SecretKey   string
	Debug       bool
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AdminConfig holds the static admin credentials checked on mutating
// catalogue requests. Absent credentials are not an error: they leave both
// fields empty, and the authenticator then rejects every admin request.
type AdminConfig struct {
	Username string
	Password string
}

// PayPalConfig holds the payment provider endpoint and API credentials.
type PayPalConfig struct {
	APIURL   string
	ClientID string
	Secret   string
}

// CatalogConfig holds the location of the catalogue file.
type CatalogConfig struct {
	File string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", EnvDevelopment)

	cfg := &Config{
		App: AppConfig{
			Environment: env,
			SecretKey:   getEnv("SECRET_KEY", "default_secret_key"),
			Debug:       getEnvAsBool("DEBUG", env == EnvDevelopment),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 5000),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		PayPal: PayPalConfig{
			APIURL:   getEnv("PAYPAL_API_URL", ""),
			ClientID: getEnv("PAYPAL_CLIENT_ID", ""),
			Secret:   getEnv("PAYPAL_SECRET", ""),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", "data/products.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration. Admin and PayPal credentials are
// deliberately not required here: missing credentials degrade into rejected
// admin requests and failing provider calls rather than a refused startup.
func (c *Config) Validate() error {
	if c.App.Environment != EnvDevelopment && c.App.Environment != EnvProduction {
		return fmt.Errorf("invalid environment: %s (must be %s or %s)",
			c.App.Environment, EnvDevelopment, EnvProduction)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Catalog.File == "" {
		return fmt.Errorf("catalogue file path is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
