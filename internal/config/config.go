// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"ELIKIA_DB_PATH" envDefault:"./data/elikia.db"`
	SessionSecret string `env:"ELIKIA_SESSION_SECRET,required"`
	ServerHost    string `env:"ELIKIA_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"ELIKIA_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"ELIKIA_ENV" envDefault:"development"`

	LogLevel   string `env:"ELIKIA_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"ELIKIA_UPLOADS_DIR" envDefault:"./data/uploads"`

	// Initial admin account, created only when the users table is empty
	AdminEmail    string `env:"ELIKIA_ADMIN_EMAIL"`
	AdminPassword string `env:"ELIKIA_ADMIN_PASSWORD"`
	AdminName     string `env:"ELIKIA_ADMIN_NAME"`

	// Cache configuration
	RedisURL     string `env:"ELIKIA_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"ELIKIA_CACHE_PREFIX" envDefault:"elikia:"` // Redis key prefix
	CacheTTL     int    `env:"ELIKIA_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"ELIKIA_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// AI article generation
	OpenAIAPIKey string `env:"ELIKIA_OPENAI_API_KEY"`
	OpenAIModel  string `env:"ELIKIA_OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Featured carousel rotation interval in seconds
	CarouselInterval int `env:"ELIKIA_CAROUSEL_INTERVAL" envDefault:"5"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// AIEnabled returns true if the AI generation API key is configured.
func (c Config) AIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("ELIKIA_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("ELIKIA_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("ELIKIA_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if cfg.CarouselInterval < 1 {
		return nil, fmt.Errorf("ELIKIA_CAROUSEL_INTERVAL must be at least 1 second, got %d", cfg.CarouselInterval)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
