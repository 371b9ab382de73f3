// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"strings"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	setEnv(t, "ELIKIA_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "./data/elikia.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/elikia.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.CarouselInterval != 5 {
		t.Errorf("CarouselInterval = %d, want 5", cfg.CarouselInterval)
	}
	if cfg.UploadsDir != "./data/uploads" {
		t.Errorf("UploadsDir = %q, want %q", cfg.UploadsDir, "./data/uploads")
	}
	if cfg.UseRedisCache() {
		t.Error("UseRedisCache() = true without ELIKIA_REDIS_URL")
	}
	if cfg.AIEnabled() {
		t.Error("AIEnabled() = true without ELIKIA_OPENAI_API_KEY")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "ELIKIA_SESSION_SECRET", "custom-secret-key-32-bytes-long!")
	setEnv(t, "ELIKIA_DB_PATH", "/custom/path.db")
	setEnv(t, "ELIKIA_SERVER_PORT", "9090")
	setEnv(t, "ELIKIA_REDIS_URL", "redis://localhost:6379/0")
	setEnv(t, "ELIKIA_OPENAI_API_KEY", "sk-test")
	setEnv(t, "ELIKIA_CAROUSEL_INTERVAL", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "/custom/path.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d", cfg.ServerPort)
	}
	if !cfg.UseRedisCache() {
		t.Error("UseRedisCache() = false with ELIKIA_REDIS_URL set")
	}
	if !cfg.AIEnabled() {
		t.Error("AIEnabled() = false with ELIKIA_OPENAI_API_KEY set")
	}
	if cfg.CarouselInterval != 10 {
		t.Errorf("CarouselInterval = %d, want 10", cfg.CarouselInterval)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without session secret")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	os.Clearenv()
	setEnv(t, "ELIKIA_SESSION_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded with short secret")
	}
	if !strings.Contains(err.Error(), "at least 32 bytes") {
		t.Errorf("error = %v, want length complaint", err)
	}
}

func TestLoad_WeakSecret(t *testing.T) {
	os.Clearenv()
	setEnv(t, "ELIKIA_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded with known weak secret")
	}
}

func TestLoad_InvalidCarouselInterval(t *testing.T) {
	os.Clearenv()
	setEnv(t, "ELIKIA_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")
	setEnv(t, "ELIKIA_CAROUSEL_INTERVAL", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded with zero carousel interval")
	}
}

func TestServerAddr(t *testing.T) {
	cfg := Config{ServerHost: "0.0.0.0", ServerPort: 3000}
	if got := cfg.ServerAddr(); got != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", got, "0.0.0.0:3000")
	}
}
