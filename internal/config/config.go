// Package config assembles the API and worker settings. Defaults are overlaid by an
// optional YAML file (CONFIG_FILE) and then by environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	envcfg "newsdesk/pkg/config"
)

// weakSecrets are rejected as JWT_SECRET regardless of length padding.
var weakSecrets = []string{"secret", "password", "test", "admin", "default", "changeme"}

// Config is the full runtime configuration.
type Config struct {
	Env     string `yaml:"env"`
	Port    int    `yaml:"port"`
	Version string `yaml:"version"`
	// SiteURL is the public front-end origin used for RSS links.
	SiteURL   string `yaml:"site_url"`
	FeedTitle string `yaml:"feed_title"`
	// TrustedProxies are IPs or CIDRs whose X-Forwarded-For is believed by the rate limiter.
	TrustedProxies []string `yaml:"trusted_proxies"`
	OTELEnabled    bool     `yaml:"otel_enabled"`

	Auth       AuthConfig       `yaml:"auth"`
	CORS       CORSConfig       `yaml:"cors"`
	Pagination PaginationConfig `yaml:"pagination"`
	Worker     WorkerConfig     `yaml:"worker"`
}

// AuthConfig controls token issuance and who may sign in.
type AuthConfig struct {
	JWTSecret    string        `yaml:"-"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
	AllowedUsers []string      `yaml:"allowed_users"`
	BcryptCost   int           `yaml:"bcrypt_cost"`
	// RateLimit is the number of login/register attempts per IP per minute.
	RateLimit int `yaml:"rate_limit"`
}

// CORSConfig lists browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxAge         int      `yaml:"max_age"`
}

// PaginationConfig bounds list endpoints.
type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// WorkerConfig drives the auction closer.
type WorkerConfig struct {
	CloseSchedule string `yaml:"close_schedule"`
	Timezone      string `yaml:"timezone"`
	HealthPort    int    `yaml:"health_port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Env:       "production",
		Port:      8080,
		Version:   "dev",
		SiteURL:   "http://localhost:3000",
		FeedTitle: "Newsdesk",
		Auth: AuthConfig{
			TokenTTL:   7 * 24 * time.Hour,
			BcryptCost: 10,
			RateLimit:  5,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{},
			MaxAge:         86400,
		},
		Pagination: PaginationConfig{
			DefaultLimit: 20,
			MaxLimit:     100,
		},
		Worker: WorkerConfig{
			CloseSchedule: "*/1 * * * *",
			Timezone:      "UTC",
			HealthPort:    9091,
		},
	}
}

// Load builds the configuration. path may be empty; CONFIG_FILE is used then.
// The path parameter is expected to come from a trusted source (CLI flag or env).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	// #nosec G304 -- path is provided by trusted source (CLI arg or env), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Env = envcfg.GetEnvString("APP_ENV", c.Env)
	c.Port = envcfg.GetEnvInt("PORT", c.Port)
	c.Version = envcfg.GetEnvString("VERSION", c.Version)
	c.SiteURL = strings.TrimSuffix(envcfg.GetEnvString("SITE_URL", c.SiteURL), "/")
	c.FeedTitle = envcfg.GetEnvString("FEED_TITLE", c.FeedTitle)
	c.TrustedProxies = envcfg.GetEnvStringList("TRUSTED_PROXIES", c.TrustedProxies)
	c.OTELEnabled = envcfg.GetEnvBool("OTEL_ENABLED", c.OTELEnabled)

	c.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	c.Auth.TokenTTL = envcfg.GetEnvDuration("JWT_EXPIRES_IN", c.Auth.TokenTTL)
	c.Auth.AllowedUsers = envcfg.GetEnvStringList("ALLOWED_USERS", c.Auth.AllowedUsers)
	c.Auth.BcryptCost = envcfg.GetEnvInt("BCRYPT_COST", c.Auth.BcryptCost)
	c.Auth.RateLimit = envcfg.GetEnvInt("AUTH_RATE_LIMIT", c.Auth.RateLimit)

	c.CORS.AllowedOrigins = envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	if c.IsDevelopment() {
		c.CORS.AllowedOrigins = appendMissing(c.CORS.AllowedOrigins,
			"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:5173")
	}

	c.Pagination.DefaultLimit = envcfg.GetEnvInt("PAGINATION_DEFAULT_LIMIT", c.Pagination.DefaultLimit)
	c.Pagination.MaxLimit = envcfg.GetEnvInt("PAGINATION_MAX_LIMIT", c.Pagination.MaxLimit)

	c.Worker.CloseSchedule = envcfg.GetEnvString("AUCTION_CLOSE_SCHEDULE", c.Worker.CloseSchedule)
	c.Worker.Timezone = envcfg.GetEnvString("WORKER_TIMEZONE", c.Worker.Timezone)
	c.Worker.HealthPort = envcfg.GetEnvInt("WORKER_HEALTH_PORT", c.Worker.HealthPort)

	for i, u := range c.Auth.AllowedUsers {
		c.Auth.AllowedUsers[i] = strings.ToLower(strings.TrimSpace(u))
	}
}

// IsDevelopment reports whether verbose error details may be exposed.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks settings that would make the service unsafe or unusable.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if err := envcfg.ValidateDurationRange(c.Auth.TokenTTL, time.Minute, 90*24*time.Hour); err != nil {
		return fmt.Errorf("jwt expiry: %w", err)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt_cost must be between 4 and 31")
	}
	if c.Auth.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive")
	}
	if c.Pagination.DefaultLimit <= 0 || c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return fmt.Errorf("pagination limits must satisfy 0 < default_limit <= max_limit")
	}
	if c.Worker.CloseSchedule == "" {
		return fmt.Errorf("close_schedule is required")
	}
	return nil
}

// ValidateJWTSecret enforces a minimum secret strength. Only processes that sign or
// verify tokens call it; the worker and admin CLI do not need the secret.
func (c *Config) ValidateJWTSecret() error {
	secret := c.Auth.JWTSecret
	if secret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	// セキュリティ: 最小32文字（256ビット）を強制
	if len(secret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters (256 bits)")
	}
	lower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if strings.Trim(lower, "0123456789") == weak || strings.Repeat(weak, len(lower)/len(weak)) == lower {
			return fmt.Errorf("JWT_SECRET must not be a common weak value")
		}
	}
	return nil
}

// Allowed reports whether email passes the allow-list. An empty list allows everyone.
func (a AuthConfig) Allowed(email string) bool {
	if len(a.AllowedUsers) == 0 {
		return true
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range a.AllowedUsers {
		if u == email {
			return true
		}
	}
	return false
}

func appendMissing(list []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range list {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			list = append(list, v)
		}
	}
	return list
}
