// Package config loads CLI configuration from the environment.
//
// Values come from TREBUCHET_* environment variables. An optional .env file
// is loaded first; variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tsawler/trebuchet/calibrate"
)

// DefaultEnvFile is the dotenv file read by Load when none is given.
const DefaultEnvFile = ".env"

// Config holds CLI configuration
type Config struct {
	// Calibration
	Mode      calibrate.Mode
	Normalize bool

	// Logging
	LogLevel  string
	LogFormat string

	// OCR
	OCRLanguage string
}

// Load reads envFile (if it exists) and then the environment.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	modeName := getEnvOrDefault("TREBUCHET_MODE", "words")
	mode, ok := calibrate.ParseMode(modeName)
	if !ok {
		return nil, fmt.Errorf("TREBUCHET_MODE must be words or legacy, got %q", modeName)
	}

	normalize, err := getEnvAsBoolOrDefault("TREBUCHET_NORMALIZE", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Mode:        mode,
		Normalize:   normalize,
		LogLevel:    strings.ToLower(getEnvOrDefault("TREBUCHET_LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnvOrDefault("TREBUCHET_LOG_FORMAT", "text")),
		OCRLanguage: getEnvOrDefault("TREBUCHET_OCR_LANG", "eng"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("TREBUCHET_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("TREBUCHET_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}

	if c.OCRLanguage == "" {
		return fmt.Errorf("TREBUCHET_OCR_LANG must not be empty")
	}

	return nil
}

// getEnvOrDefault gets environment variable or returns default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBoolOrDefault parses a boolean environment variable.
func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return b, nil
}
