// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/elikiamedia/elikia/internal/auth"
)

// Default admin credentials, overridable through configuration.
const (
	DefaultAdminEmail    = "admin@elikiamedia.com"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrateur"
)

// SeedAdmin creates the initial admin account if no users exist yet.
func SeedAdmin(ctx context.Context, db *sql.DB, email, password, name string) error {
	queries := New(db)

	if email == "" {
		email = DefaultAdminEmail
	}
	if password == "" {
		password = DefaultAdminPassword
	}
	if name == "" {
		name = DefaultAdminName
	}

	n, err := queries.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if n > 0 {
		slog.Debug("users exist, skipping admin seed")
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	id, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created admin user", "id", id, "email", email)
	return nil
}
