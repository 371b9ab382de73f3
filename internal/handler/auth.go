// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/elikiamedia/elikia/internal/auth"
	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/render"
	"github.com/elikiamedia/elikia/internal/service"
	"github.com/elikiamedia/elikia/internal/session"
	"github.com/elikiamedia/elikia/internal/store"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	queries        *store.Queries
	content        *service.ContentService
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	events         *service.EventService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		queries:        store.New(db),
		content:        content,
		renderer:       renderer,
		sessionManager: sm,
		events:         service.NewEventService(db),
	}
}

// LoginForm renders the login page. Already-authenticated users go
// straight back to the home page.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if session.IsAuthenticated(h.sessionManager, r) {
		http.Redirect(w, r, routeRoot, http.StatusSeeOther)
		return
	}

	snapshot, err := h.content.LoadAll(r.Context())
	if err != nil {
		logAndInternalError(w, "loading content", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title:    "Connexion",
		Settings: snapshot.Settings,
	}); err != nil {
		logAndInternalError(w, "rendering login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, routeLogin) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, routeLogin, "Email et mot de passe requis")
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for unknown user", "email", email)
			_ = h.events.LogAuth(r.Context(), model.EventLevelWarning, "Échec de connexion : utilisateur inconnu", nil, map[string]any{"email": email})
		} else {
			slog.Error("database error during login", "error", err)
		}
		flashError(w, r, h.renderer, routeLogin, auth.ErrInvalidCredentials.Error())
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		flashError(w, r, h.renderer, routeLogin, auth.ErrInvalidCredentials.Error())
		return
	}
	if !valid {
		slog.Debug("invalid password attempt", "email", email)
		_ = h.events.LogAuth(r.Context(), model.EventLevelWarning, "Échec de connexion : mot de passe invalide", &user.ID, map[string]any{"email": email})
		flashError(w, r, h.renderer, routeLogin, auth.ErrInvalidCredentials.Error())
		return
	}

	// Re-hash the password if it was stored with older parameters
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), user.ID, newHash); err != nil {
				slog.Error("re-hashing password", "error", err, "user_id", user.ID)
			} else {
				slog.Info("password re-hashed with updated parameters", "user_id", user.ID)
			}
		}
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID); err != nil {
		// Not worth blocking the login
		slog.Error("updating last login time", "error", err, "user_id", user.ID)
	}

	// Regenerate the session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), session.KeyUserID, user.ID)
	h.sessionManager.Put(r.Context(), session.KeyUserEmail, user.Email)

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	_ = h.events.LogAuth(r.Context(), model.EventLevelInfo, "Connexion réussie", &user.ID, map[string]any{"email": user.Email})

	flashSuccess(w, r, h.renderer, routeRoot, "Bienvenue, "+user.Name)
}

// Logout destroys the session and returns to the home page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), session.KeyUserID)

	if userID > 0 {
		_ = h.events.LogAuth(r.Context(), model.EventLevelInfo, "Déconnexion", &userID, nil)
	}

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("user logged out", "user_id", userID)
	flashAndRedirect(w, r, h.renderer, routeRoot, "Vous êtes déconnecté", "info")
}
