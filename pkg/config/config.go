// Package config loads engine configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for edgeboard-engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Entity store the engine composes views from
	Store StoreConfig `yaml:"store"`
}

// StoreConfig addresses the external entity store.
type StoreConfig struct {
	// BaseURL is the root of the store's collection API. Required.
	BaseURL string `yaml:"base_url" env:"STORE_BASE_URL" env-default:""`

	// TimeoutSeconds bounds each collection read. There is no retry: a read
	// that fails or times out aborts its composition.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"STORE_TIMEOUT_SECONDS" env-default:"10"`
}

// Timeout returns the per-read timeout as a duration.
func (s StoreConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Load reads configuration from config.yaml (when present) and the
// environment, then validates it.
func Load(version string) (*Config, error) {
	return LoadFrom("config.yaml", version)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path, version string) (*Config, error) {
	cfg := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.Version = version

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Store.BaseURL == "" {
		return fmt.Errorf("store base URL is required (STORE_BASE_URL)")
	}
	parsed, err := url.Parse(c.Store.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("store base URL %q must be an absolute URL", c.Store.BaseURL)
	}
	if c.Store.TimeoutSeconds <= 0 {
		return fmt.Errorf("store timeout must be positive, got %d", c.Store.TimeoutSeconds)
	}
	return nil
}
