package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Provider ProviderConfig `toml:"provider"`
	Cache    CacheConfig    `toml:"cache"`
	Limits   LimitsConfig   `toml:"limits"`
	Retry    RetryConfig    `toml:"retry"`
	Server   ServerConfig   `toml:"server"`
}

// ProviderConfig contains settings for the InnerTube proxy the catalogue client talks to.
type ProviderConfig struct {
	ProxyURL       string `toml:"proxy_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// CacheConfig contains fetch-cache settings, including the pool limits for
// the backing SQLite connection.
type CacheConfig struct {
	Path         string `toml:"path"`
	TTLSeconds   int    `toml:"ttl_seconds"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LimitsConfig contains per-endpoint rate limit windows.
type LimitsConfig struct {
	AnalyzeMaxRequests   int `toml:"analyze_max_requests"`
	RecommendMaxRequests int `toml:"recommend_max_requests"`
	WindowSeconds        int `toml:"window_seconds"`
}

// RetryConfig contains exponential backoff settings for provider calls.
type RetryConfig struct {
	MaxRetries     int     `toml:"max_retries"`
	InitialDelayMS int     `toml:"initial_delay_ms"`
	MaxDelayMS     int     `toml:"max_delay_ms"`
	Factor         float64 `toml:"factor"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// A .env file in the working directory (if any) and VIBECHECK_* environment
// variables override the file's provider and cache settings.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv layers .env and VIBECHECK_* overrides onto the loaded config.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("VIBECHECK_PROXY_URL"); v != "" {
		c.Provider.ProxyURL = v
	}
	if v := os.Getenv("VIBECHECK_CACHE_PATH"); v != "" {
		c.Cache.Path = v
	}
	if v := os.Getenv("VIBECHECK_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
}
