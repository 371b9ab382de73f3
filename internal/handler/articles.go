// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/elikiamedia/elikia/internal/ai"
	"github.com/elikiamedia/elikia/internal/middleware"
	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/render"
	"github.com/elikiamedia/elikia/internal/service"
	"github.com/elikiamedia/elikia/internal/view"
)

// ArticleHandler handles the admin article form and mutations.
type ArticleHandler struct {
	content   *service.ContentService
	renderer  *render.Renderer
	events    *service.EventService
	generator *ai.Generator
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(db *sql.DB, content *service.ContentService, renderer *render.Renderer, generator *ai.Generator) *ArticleHandler {
	return &ArticleHandler{
		content:   content,
		renderer:  renderer,
		events:    service.NewEventService(db),
		generator: generator,
	}
}

// articleFormData is the template payload for the article form.
type articleFormData struct {
	Article    model.Article
	Categories []string
	AIEnabled  bool
}

// NewForm renders the empty article form.
func (h *ArticleHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	state := view.EditArticle(nil)
	h.renderForm(w, r, "Nouvel article", state.Editing)
}

// EditForm renders the form pre-filled with an existing article.
func (h *ArticleHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		flashError(w, r, h.renderer, routeRoot, "Article introuvable")
		return
	}

	snapshot, err := h.content.LoadAll(r.Context())
	if err != nil {
		logAndInternalError(w, "loading content", "error", err)
		return
	}

	for i := range snapshot.Articles {
		if snapshot.Articles[i].ID == id {
			state := view.EditArticle(&snapshot.Articles[i])
			h.renderForm(w, r, "Modifier l'article", state.Editing)
			return
		}
	}

	flashError(w, r, h.renderer, routeRoot, "Article introuvable")
}

func (h *ArticleHandler) renderForm(w http.ResponseWriter, r *http.Request, title string, editing *model.Article) {
	snapshot, err := h.content.LoadAll(r.Context())
	if err != nil {
		logAndInternalError(w, "loading content", "error", err)
		return
	}

	data := articleFormData{
		Categories: model.Categories,
		AIEnabled:  h.generator.Enabled(),
	}
	if editing != nil {
		data.Article = *editing
	} else {
		data.Article = model.Article{
			Category: model.Categories[0],
			Media:    model.Media{Type: model.MediaImage},
		}
	}

	if err := h.renderer.Render(w, r, "admin/article_form", render.TemplateData{
		Title:    title,
		Settings: snapshot.Settings,
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "rendering article form", "error", err)
	}
}

// Create persists a new article from the submitted form.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, 0)
}

// Update persists changes to an existing article.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		flashError(w, r, h.renderer, routeRoot, "Article introuvable")
		return
	}
	h.save(w, r, id)
}

func (h *ArticleHandler) save(w http.ResponseWriter, r *http.Request, id int64) {
	if !parseFormOrRedirect(w, r, h.renderer, routeRoot) {
		return
	}

	input := service.ArticleInput{
		ID:       id,
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
		Author:   r.FormValue("author"),
		Content:  r.FormValue("content"),
		Featured: r.FormValue("featured") != "",
		Media: model.Media{
			Type:     model.MediaType(r.FormValue("media_type")),
			URL:      r.FormValue("media_url"),
			Filename: r.FormValue("media_filename"),
		},
	}

	if input.Title == "" {
		flashError(w, r, h.renderer, formURL(id), "Le titre est obligatoire")
		return
	}

	article, err := h.content.SaveArticle(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCategory):
			flashError(w, r, h.renderer, formURL(id), "Catégorie inconnue")
		case errors.Is(err, service.ErrInvalidMediaType):
			flashError(w, r, h.renderer, formURL(id), "Type de média inconnu")
		case errors.Is(err, sql.ErrNoRows):
			flashError(w, r, h.renderer, routeRoot, "Article introuvable")
		default:
			slog.Error("saving article", "id", id, "error", err)
			flashError(w, r, h.renderer, formURL(id), "Enregistrement impossible")
		}
		return
	}

	userID := currentUserID(r)
	action := "Article créé"
	if id != 0 {
		action = "Article modifié"
	}
	_ = h.events.LogInfo(r.Context(), model.EventCategoryArticle, action, userID, map[string]any{
		"article_id": article.ID,
		"slug":       article.Slug,
	})

	flashSuccess(w, r, h.renderer, "/"+view.SelectArticle(article), "Article enregistré")
}

// Delete removes an article. The form must carry an explicit
// confirmation field; without it nothing is deleted.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		flashError(w, r, h.renderer, routeRoot, "Article introuvable")
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, routeRoot) {
		return
	}
	confirmed := r.FormValue("confirm") == "yes"

	if err := h.content.DeleteArticle(r.Context(), id, confirmed); err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfirmed):
			flashError(w, r, h.renderer, routeRoot, "Suppression non confirmée")
		case errors.Is(err, sql.ErrNoRows):
			flashError(w, r, h.renderer, routeRoot, "Article introuvable")
		default:
			slog.Error("deleting article", "id", id, "error", err)
			flashError(w, r, h.renderer, routeRoot, "Suppression impossible")
		}
		return
	}

	_ = h.events.LogInfo(r.Context(), model.EventCategoryArticle, "Article supprimé", currentUserID(r), map[string]any{
		"article_id": id,
	})

	flashSuccess(w, r, h.renderer, routeRoot, "Article supprimé")
}

// formURL returns the form route for an article id, or the new-article
// route for zero.
func formURL(id int64) string {
	if id == 0 {
		return "/admin/articles/new"
	}
	return "/admin/articles/" + strconv.FormatInt(id, 10)
}

// currentUserID returns a pointer to the logged-in user id for event
// logging, or nil when no user is loaded on the request.
func currentUserID(r *http.Request) *int64 {
	if user := middleware.UserFromContext(r.Context()); user != nil {
		return &user.ID
	}
	return nil
}
