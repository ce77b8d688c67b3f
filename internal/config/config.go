package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultScopes is the scope string requested from the Kleos token endpoint
// when KLEOS_SCOPES is not set.
const DefaultScopes = "kleosStateful kleosLegal kleosLegalApiClient"

// Config holds all configuration for the application
type Config struct {
	TokenURL           string
	APIBase            string
	ClientID           string
	ClientSecret       string
	Scopes             []string
	ServerPort         string
	HTTPTimeout        time.Duration
	InsecureSkipVerify bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		TokenURL:           getEnv("KLEOS_TOKEN_URL", ""),
		APIBase:            strings.TrimRight(getEnv("KLEOS_API_BASE", ""), "/"),
		ClientID:           getEnv("KLEOS_CLIENT_ID", ""),
		ClientSecret:       getEnv("KLEOS_CLIENT_SECRET", ""),
		Scopes:             strings.Fields(getEnv("KLEOS_SCOPES", DefaultScopes)),
		ServerPort:         getEnv("SERVER_PORT", "3000"),
		HTTPTimeout:        getDurationEnv("HTTP_TIMEOUT", 30*time.Second),
		InsecureSkipVerify: getBoolEnv("KLEOS_INSECURE_SKIP_VERIFY", false),
	}

	if cfg.TokenURL == "" || cfg.APIBase == "" {
		return nil, &ConfigError{Message: "KLEOS_TOKEN_URL and KLEOS_API_BASE must be set"}
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, &ConfigError{Message: "KLEOS_CLIENT_ID and KLEOS_CLIENT_SECRET must be set"}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
