package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
// Supports environment variables with sensible defaults
//
// Environment Variables:
// Weather API Configuration:
// - WEATHER_API_BASE: Base URL of the NWS API (default: https://api.weather.gov)
// - WEATHER_USER_AGENT: User-Agent header sent upstream (default: weather-app/1.0)
// - WEATHER_TIMEOUT: Upstream request timeout in seconds (default: 30)
//
// Logging Configuration:
// - LOG_LEVEL: Minimum log level: debug, info, warn, error, fatal (default: info)
// - LOG_FILE: Log file path; empty logs to stderr (default: empty)

type Config struct {
	// Weather API Configuration
	Weather WeatherConfig `json:"weather"`

	// Logging Configuration
	Log LogConfig `json:"log"`
}

// WeatherConfig holds the configuration for the upstream weather API client
type WeatherConfig struct {
	BaseURL   string `json:"base_url"`
	UserAgent string `json:"user_agent"`
	Timeout   int    `json:"timeout"` // seconds
}

// LogConfig holds the logging configuration
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment variables and options
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		Weather: WeatherConfig{
			BaseURL:   getEnvString("WEATHER_API_BASE", "https://api.weather.gov"),
			UserAgent: getEnvString("WEATHER_USER_AGENT", "weather-app/1.0"),
			Timeout:   getEnvInt("WEATHER_TIMEOUT", 30),
		},
		Log: LogConfig{
			Level: getEnvString("LOG_LEVEL", "info"),
			File:  getEnvString("LOG_FILE", ""),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	// Validate required configuration
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.Weather.BaseURL == "" {
		return fmt.Errorf("WEATHER_API_BASE must not be empty")
	}
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive, got %d", c.Weather.Timeout)
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
