// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.DefaultTTL)
	assert.Equal(t, 10000, cfg.MaxSize)
	assert.Equal(t, time.Minute, cfg.CleanupInterval)
}

func TestDefaultRedisCacheOptions(t *testing.T) {
	opts := DefaultRedisCacheOptions()

	assert.NotEmpty(t, opts.Prefix)
	assert.Greater(t, opts.DefaultTTL, time.Duration(0))
}
