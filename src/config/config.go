package config

import (
	"fmt"
	"os"

	"market-watch/src/models"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from a YAML file, then applies
// MARKETWATCH_* environment overrides. A .env file is loaded first when
// present; its absence is not an error.
func NewConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	// 3. Environment variables win over file values
	if err := envconfig.Process("marketwatch", &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 4. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Default creates a usable configuration without a config file, for running
// the watcher with no setup at all.
func Default() *Config {
	_ = godotenv.Load()

	modelConfig := models.MConfig{Name: "market-watch"}
	_ = envconfig.Process("marketwatch", &modelConfig)

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()
	return config
}

// -----------------------------------------------------------------------------

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "market-watch"
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.Market.DefaultCountry == "" {
		c.Market.DefaultCountry = "US"
	}
	if len(c.Market.Detection) == 0 {
		c.Market.Detection = []string{"env", "geoip"}
	}
	if c.Network.RequestTimeout <= 0 {
		c.Network.RequestTimeout = 10
	}
	if c.Network.MaxRetries < 0 {
		c.Network.MaxRetries = 0
	}
	if c.Network.ConcurrentRequests <= 0 {
		c.Network.ConcurrentRequests = 4
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "sqlite"
	}
	if c.Cache.DBPath == "" {
		c.Cache.DBPath = "market_cache.db"
	}
	if c.Cache.QuoteTTLSeconds <= 0 {
		c.Cache.QuoteTTLSeconds = 180
	}
	if c.Dashboard.RefreshIntervalSeconds <= 0 {
		c.Dashboard.RefreshIntervalSeconds = 3
	}
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8765
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Advisor thresholds: zero means "use default", negative is a mistake
	if c.Advisor.BuyThresholdPct < 0 {
		return fmt.Errorf("buy threshold must be positive, got %f", c.Advisor.BuyThresholdPct)
	}
	if c.Advisor.SellThresholdPct < 0 {
		return fmt.Errorf("sell threshold must be positive, got %f", c.Advisor.SellThresholdPct)
	}

	// Validate Network configuration
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Network.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}
	if c.Network.ConcurrentRequests <= 0 {
		return fmt.Errorf("concurrent requests must be greater than 0")
	}

	// Validate Cache configuration
	switch c.Cache.Backend {
	case "sqlite":
		if c.Cache.DBPath == "" {
			return fmt.Errorf("cache db path cannot be empty for sqlite")
		}
	case "postgres":
		if c.Cache.DBConnectionString == "" {
			return fmt.Errorf("cache connection string cannot be empty for postgres")
		}
	default:
		return fmt.Errorf("unknown cache backend: %s", c.Cache.Backend)
	}

	// Validate refresh loop
	if c.Dashboard.RefreshIntervalSeconds <= 0 {
		return fmt.Errorf("refresh interval must be greater than 0")
	}

	// Validate Server configuration
	if c.Server.Enabled {
		if c.Server.Host == "" {
			return fmt.Errorf("server host cannot be empty")
		}
		if c.Server.Port <= 1024 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Server.Port)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
