// Package config loads the afc configuration.
//
// Values are applied in this order, the last one wins: defaults, TOML files,
// the .env file of the working directory, AFC_* environment variables, and
// finally the command line flags.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/etnz/assetflow/logger"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Currency       string `toml:"currency"`        // ISO code used to format amounts, none by default
	Unit           string `toml:"unit"`            // unit of the amounts, like "KRW10K"
	DefaultModel   string `toml:"default_model"`   // model used when none is given
	CatalogFile    string `toml:"catalog_file"`    // replaces the embedded catalog
	AllocationFile string `toml:"allocation_file"` // the sample allocation is used when empty

	Compare CompareConfig `toml:"compare"`
	Report  ReportConfig  `toml:"report"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	Assist  AssistConfig  `toml:"assist"`
}

// CompareConfig contains the rebalancing settings.
type CompareConfig struct {
	IncludeModelOnly bool `toml:"include_model_only"`
}

// ReportConfig contains the PDF report settings.
type ReportConfig struct {
	File         string `toml:"file"`
	RepeatHeader bool   `toml:"repeat_header"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// AssistConfig contains the assistant settings.
type AssistConfig struct {
	Model string `toml:"model"`
}

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Unit:         "KRW10K",
		DefaultModel: "Balanced",
		Report: ReportConfig{
			File: "Rebalancing_Report.pdf",
		},
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
		Assist: AssistConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> .env -> env.
// Later files override earlier files. Empty paths are skipped.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	// Load .env file if it exists, it never overrides the actual environment.
	_ = godotenv.Load()
	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies AFC_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	config.Currency = getEnv("AFC_CURRENCY", config.Currency)
	config.Unit = getEnv("AFC_UNIT", config.Unit)
	config.DefaultModel = getEnv("AFC_DEFAULT_MODEL", config.DefaultModel)
	config.CatalogFile = getEnv("AFC_CATALOG_FILE", config.CatalogFile)
	config.AllocationFile = getEnv("AFC_ALLOCATION_FILE", config.AllocationFile)
	config.Compare.IncludeModelOnly = getEnvAsBool("AFC_COMPARE_INCLUDE_MODEL_ONLY", config.Compare.IncludeModelOnly)
	config.Report.File = getEnv("AFC_REPORT_FILE", config.Report.File)
	config.Report.RepeatHeader = getEnvAsBool("AFC_REPORT_REPEAT_HEADER", config.Report.RepeatHeader)
	config.Server.Host = getEnv("AFC_SERVER_HOST", config.Server.Host)
	config.Server.Port = getEnvAsInt("AFC_SERVER_PORT", config.Server.Port)
	config.Logging.Level = getEnv("AFC_LOG_LEVEL", config.Logging.Level)
	config.Logging.Pretty = getEnvAsBool("AFC_LOG_PRETTY", config.Logging.Pretty)
	config.Assist.Model = getEnv("AFC_ASSIST_MODEL", config.Assist.Model)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DefaultModel == "" {
		return errors.New("default_model is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Address returns the host:port the server listens to.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// LoggerConfig returns the logger configuration.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Level: c.Logging.Level, Pretty: c.Logging.Pretty}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
