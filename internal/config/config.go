// Package config loads the backend configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Config contains the process configuration.
type Config struct {
	// APIURL is the URL the API is reachable at, e.g. https://ledger.example.com/api
	APIURL string `koanf:"api_url"`

	// DBPath is the path of the SQLite database file.
	DBPath string `koanf:"db_path"`

	GinMode string `koanf:"gin_mode"`

	// LogFormat is "human" or "json". If empty, it depends on the gin mode.
	LogFormat string `koanf:"log_format"`

	// CORSAllowOrigins is a space separated list of allowed origins.
	CORSAllowOrigins string `koanf:"cors_allow_origins"`

	EnablePprof bool `koanf:"enable_pprof"`

	// DefaultCostType is the fixed cost category allocated when a
	// request does not name one.
	DefaultCostType string `koanf:"default_cost_type"`

	// Language is the BCP 47 tag used to format amounts in allocation
	// cost descriptions.
	Language string `koanf:"language"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		DBPath:          "data/gorm.db",
		GinMode:         "release",
		DefaultCostType: "salary",
		Language:        "en",
	}
}

// URL returns the parsed API URL.
func (c Config) URL() (*url.URL, error) {
	if c.APIURL == "" {
		return nil, fmt.Errorf("%w: api_url must be set", ErrInvalidConfig)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("%w: api_url must be an absolute URL, got '%s'", ErrInvalidConfig, c.APIURL)
	}

	u.Path = strings.TrimSuffix(u.Path, "/")
	return u, nil
}

// LanguageTag returns the parsed language.
func (c Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("%w: language: %w", ErrInvalidConfig, err)
	}

	return tag, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if _, err := c.URL(); err != nil {
		return err
	}

	if c.DBPath == "" {
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: gin_mode must be one of debug, release, test, got '%s'", ErrInvalidConfig, c.GinMode)
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		return fmt.Errorf("%w: log_format must be human or json, got '%s'", ErrInvalidConfig, c.LogFormat)
	}

	if strings.TrimSpace(c.DefaultCostType) == "" {
		return fmt.Errorf("%w: default_cost_type must not be empty", ErrInvalidConfig)
	}

	if _, err := c.LanguageTag(); err != nil {
		return err
	}

	return nil
}
