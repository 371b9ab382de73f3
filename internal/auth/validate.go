// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import "errors"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("identifiants invalides")

	// ErrPasswordTooShort is returned when a new password is below the minimum length.
	ErrPasswordTooShort = errors.New("le mot de passe doit contenir au moins 6 caractères")

	// ErrPasswordMismatch is returned when the confirmation does not match.
	ErrPasswordMismatch = errors.New("les mots de passe ne correspondent pas")
)

// ValidateNewPassword checks a password change request. The new password
// must meet the minimum length and match its confirmation.
func ValidateNewPassword(password, confirm string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
