// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/elikiamedia/elikia/internal/auth"
	"github.com/elikiamedia/elikia/internal/middleware"
	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/render"
	"github.com/elikiamedia/elikia/internal/service"
	"github.com/elikiamedia/elikia/internal/store"
)

// SettingsHandler handles the site settings form, including the
// optional admin password change.
type SettingsHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
	events   *service.EventService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer) *SettingsHandler {
	return &SettingsHandler{
		queries:  store.New(db),
		content:  content,
		renderer: renderer,
		events:   service.NewEventService(db),
	}
}

// settingsFormData is the template payload for the settings form.
type settingsFormData struct {
	Settings model.Settings
}

// Form renders the settings form with the current values.
func (h *SettingsHandler) Form(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.content.LoadAll(r.Context())
	if err != nil {
		logAndInternalError(w, "loading content", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/settings", render.TemplateData{
		Title:    "Paramètres",
		Settings: snapshot.Settings,
		Data:     settingsFormData{Settings: snapshot.Settings},
	}); err != nil {
		logAndInternalError(w, "rendering settings form", "error", err)
	}
}

// Save persists the submitted settings. When the password fields are
// filled it also validates and applies a password change.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, routeSettings) {
		return
	}

	settings := model.Settings{
		FacebookURL:  r.FormValue("facebook"),
		WhatsappURL:  r.FormValue("whatsapp"),
		YoutubeURL:   r.FormValue("youtube"),
		TwitterURL:   r.FormValue("twitter"),
		InstagramURL: r.FormValue("instagram"),
		LinkedinURL:  r.FormValue("linkedin"),
		Email:        r.FormValue("email"),
		Phone:        r.FormValue("phone"),
		Address:      r.FormValue("address"),
		MapURL:       r.FormValue("map_url"),
		Hours:        r.FormValue("hours"),
	}

	if err := h.content.SaveSettings(r.Context(), settings); err != nil {
		slog.Error("saving settings", "error", err)
		flashError(w, r, h.renderer, routeSettings, "Enregistrement impossible")
		return
	}

	userID := currentUserID(r)
	_ = h.events.LogInfo(r.Context(), model.EventCategorySettings, "Paramètres enregistrés", userID, nil)

	// Optional password change, only when a new password was typed
	if newPassword := r.FormValue("new_password"); newPassword != "" {
		if err := h.changePassword(r, newPassword, r.FormValue("confirm_password")); err != nil {
			flashError(w, r, h.renderer, routeSettings, err.Error())
			return
		}
		flashSuccess(w, r, h.renderer, routeSettings, "Paramètres et mot de passe enregistrés")
		return
	}

	flashSuccess(w, r, h.renderer, routeSettings, "Paramètres enregistrés")
}

func (h *SettingsHandler) changePassword(r *http.Request, newPassword, confirm string) error {
	if err := auth.ValidateNewPassword(newPassword, confirm); err != nil {
		return err
	}

	user := middleware.UserFromContext(r.Context())
	if user == nil {
		return errors.New("session expirée")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		slog.Error("hashing new password", "error", err)
		return errors.New("changement de mot de passe impossible")
	}

	if err := h.queries.UpdateUserPassword(r.Context(), user.ID, hash); err != nil {
		slog.Error("updating password", "error", err, "user_id", user.ID)
		return errors.New("changement de mot de passe impossible")
	}

	_ = h.events.LogAuth(r.Context(), model.EventLevelInfo, "Mot de passe modifié", &user.ID, nil)
	return nil
}
