// Package config loads the go-items YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// Config holds all go-items configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	View    ViewConfig    `yaml:"view"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig configures the item store.
type StorageConfig struct {
	DataFile string `yaml:"data_file"`

	// Zero disables the background saver; saves then happen after each write
	BackgroundSave  time.Duration `yaml:"background_save"`
	TransactionSave bool          `yaml:"transaction_save"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// ViewConfig sets the defaults for views requested over HTTP.
type ViewConfig struct {
	DefaultSort     string `yaml:"default_sort"`
	DefaultPageSize int    `yaml:"default_page_size"`
	MaxPageSize     int    `yaml:"max_page_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	view := domain.DefaultViewConfig()
	return &Config{
		Server: ServerConfig{
			Port:            "5000",
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			DataFile:        "go-items_data.itms",
			TransactionSave: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		View: ViewConfig{
			DefaultSort:     view.SortField,
			DefaultPageSize: view.PageSize,
			MaxPageSize:     100,
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would break the server at runtime.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if c.Storage.BackgroundSave < 0 {
		return fmt.Errorf("storage.background_save cannot be negative")
	}
	if c.View.DefaultPageSize < 1 {
		return fmt.Errorf("view.default_page_size must be at least 1")
	}
	if c.View.MaxPageSize < c.View.DefaultPageSize {
		return fmt.Errorf("view.max_page_size %d is below default_page_size %d", c.View.MaxPageSize, c.View.DefaultPageSize)
	}
	return nil
}

// DefaultView returns the view used when a request leaves fields unset.
func (c *Config) DefaultView() domain.ViewConfig {
	view := domain.DefaultViewConfig()
	if c.View.DefaultSort != "" {
		view.SortField = c.View.DefaultSort
	}
	view.PageSize = c.View.DefaultPageSize
	return view
}
