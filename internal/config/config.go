package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Log   LogConfig
	Sheet SheetConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level slog.Level
}

// SheetConfig holds sheet rendering configuration
type SheetConfig struct {
	Width int // rendered sheet width in columns
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	level, err := parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Log: LogConfig{
			Level: level,
		},
		Sheet: SheetConfig{
			Width: getEnvAsIntOrDefault("SHEET_WIDTH", 72),
		},
	}

	if cfg.Sheet.Width < 40 {
		return nil, fmt.Errorf("SHEET_WIDTH must be at least 40, got %d", cfg.Sheet.Width)
	}

	return cfg, nil
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown LOG_LEVEL %q", value)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
