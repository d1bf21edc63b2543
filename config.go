package storage

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config mirrors the storage section of a yaml config file:
//
//	storage_url: ${MONTHLY_CLOUD_STORAGE_URL}
//	locale: pt
//	timeout: 10s
//	website_id: 1
//	list_id: 2
type Config struct {
	StorageURL    string `yaml:"storage_url"`
	Locale        string `yaml:"locale"`
	Timeout       string `yaml:"timeout"` // e.g. "30s"
	WebsiteID     int64  `yaml:"website_id"`
	MarketplaceID int64  `yaml:"marketplace_id"`
	ListID        int64  `yaml:"list_id"`
}

// WithDefaults fills unset fields. The storage url falls back to
// MONTHLY_CLOUD_STORAGE_URL.
func (c Config) WithDefaults() Config {
	if isEmpty(c.StorageURL) {
		c.StorageURL = os.Getenv(StorageURLEnv)
	}
	if isEmpty(c.Locale) {
		c.Locale = DefaultLocale
	}
	if isEmpty(c.Timeout) {
		c.Timeout = "30s"
	}
	return c
}

// LoadConfig reads a yaml file, expanding ${VAR} references first.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.WithDefaults(), nil
}

// NewFromConfig returns a builder with the scope ids of cfg already set.
// opts are applied after the config, so they win.
func NewFromConfig(cfg Config, opts ...Option) (*Storage, error) {
	cfg = cfg.WithDefaults()

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
	}

	opts = append([]Option{WithTimeout(timeout), WithLocale(cfg.Locale)}, opts...)
	s := New(cfg.StorageURL, opts...).
		SetWebsite(cfg.WebsiteID).
		SetMarketplace(cfg.MarketplaceID).
		SetList(cfg.ListID)
	return s, nil
}
