// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Source  SourceConfig
	Storage StorageConfig
	Charts  ChartConfig
}

type SourceConfig struct {
	BaseURL        string
	TimeoutSeconds int
	RatePerSecond  float64
}

type StorageConfig struct {
	DataDir  string
	DBPath   string
	LogLevel string
}

type ChartConfig struct {
	OutputDir    string
	TopCustomers int
	TopProducts  int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	dataDir := getEnv("DATA_DIR", "./data")

	config := &Config{
		Source: SourceConfig{
			BaseURL:        getEnv("API_BASE_URL", "https://dummyjson.com"),
			TimeoutSeconds: getEnvAsInt("FETCH_TIMEOUT", 30),
			RatePerSecond:  getEnvAsFloat("FETCH_RATE_LIMIT", 2.0),
		},
		Storage: StorageConfig{
			DataDir:  dataDir,
			DBPath:   getEnv("DB_PATH", filepath.Join(dataDir, "sales_data.db")),
			LogLevel: getEnv("DB_LOG_LEVEL", "silent"),
		},
		Charts: ChartConfig{
			OutputDir:    getEnv("CHART_DIR", "./visualizations"),
			TopCustomers: getEnvAsInt("TOP_CUSTOMERS", 10),
			TopProducts:  getEnvAsInt("TOP_PRODUCTS", 5),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Source.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %d", c.Source.TimeoutSeconds)
	}
	if c.Source.RatePerSecond <= 0 {
		return fmt.Errorf("FETCH_RATE_LIMIT must be positive, got %v", c.Source.RatePerSecond)
	}
	if c.Charts.TopCustomers <= 0 || c.Charts.TopProducts <= 0 {
		return fmt.Errorf("TOP_CUSTOMERS and TOP_PRODUCTS must be positive")
	}
	return nil
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
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
