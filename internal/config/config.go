package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"tabspect/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths  PathConfig
	Output OutputConfig
}

// PathConfig holds the input file locations.
// Relative CSVFile/ExcelFile values are resolved against BaseDir.
type PathConfig struct {
	BaseDir   string
	CSVFile   string
	ExcelFile string
}

// OutputConfig holds inspection output settings
type OutputConfig struct {
	SampleRows int
	Stats      bool
}

// Load reads configuration from a .env file (when present) and
// environment variables
func Load() *Config {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	return &Config{
		Paths: PathConfig{
			BaseDir:   getEnvOrDefault("BASE_DIR", ""),
			CSVFile:   getEnvOrDefault("CSV_FILE", ""),
			ExcelFile: getEnvOrDefault("EXCEL_FILE", ""),
		},
		Output: OutputConfig{
			SampleRows: getEnvIntOrDefault("SAMPLE_ROWS", 5),
			Stats:      getEnvBoolOrDefault("STATS", false),
		},
	}
}

// CSVPath returns the resolved CSV file path
func (p PathConfig) CSVPath() (string, error) {
	return p.resolve(p.CSVFile, "CSV_FILE")
}

// ExcelPath returns the resolved workbook file path
func (p PathConfig) ExcelPath() (string, error) {
	return p.resolve(p.ExcelFile, "EXCEL_FILE")
}

func (p PathConfig) resolve(path, name string) (string, error) {
	if path == "" {
		return "", errors.ConfigInvalid(name + " is required")
	}
	if p.BaseDir != "" && !filepath.IsAbs(path) {
		return filepath.Join(p.BaseDir, path), nil
	}
	return path, nil
}

// Validate checks output settings
func (c *Config) Validate() error {
	if c.Output.SampleRows < 0 {
		return errors.ConfigInvalid("SAMPLE_ROWS must not be negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
