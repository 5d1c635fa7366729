package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Sources  SourcesConfig  `toml:"sources"`
	Cache    CacheConfig    `toml:"cache"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// SourcesConfig contains settings for the two external catalog sources.
type SourcesConfig struct {
	LinguistURL    string  `toml:"linguist_url"`
	TagAPIBaseURL  string  `toml:"tag_api_base_url"`
	TagSite        string  `toml:"tag_site"`
	PageSize       int     `toml:"page_size"`
	MaxPages       int     `toml:"max_pages"`
	RequestsPerSec float64 `toml:"requests_per_sec"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

// CacheConfig contains TTLs for the read-side cache, in seconds.
type CacheConfig struct {
	ListTTLSeconds   int `toml:"list_ttl_seconds"`
	SearchTTLSeconds int `toml:"search_ttl_seconds"`
}

// HTTPTimeout returns the configured source fetch timeout as a [time.Duration].
func (s SourcesConfig) HTTPTimeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ListTTL returns the listing cache TTL as a [time.Duration].
func (c CacheConfig) ListTTL() time.Duration {
	return time.Duration(c.ListTTLSeconds) * time.Second
}

// SearchTTL returns the search cache TTL as a [time.Duration].
func (c CacheConfig) SearchTTL() time.Duration {
	return time.Duration(c.SearchTTLSeconds) * time.Second
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
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
