// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers for the public site and
// the admin area.
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/elikiamedia/elikia/internal/carousel"
	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/render"
	"github.com/elikiamedia/elikia/internal/service"
	"github.com/elikiamedia/elikia/internal/view"
)

// SiteHandler serves the public pages: the home page with the carousel
// and article grid, and the article detail page.
type SiteHandler struct {
	content  *service.ContentService
	renderer *render.Renderer
	rotator  *carousel.Rotator
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(content *service.ContentService, renderer *render.Renderer, rotator *carousel.Rotator) *SiteHandler {
	return &SiteHandler{
		content:  content,
		renderer: renderer,
		rotator:  rotator,
	}
}

// homeData is the template payload for the home page.
type homeData struct {
	Slide          *model.Article
	SlideIndex     int
	Featured       []model.Article
	Articles       []model.Article
	Categories     []string
	ActiveCategory string
	Query          string
}

// Home renders the home page. The article grid honors the category and
// search query parameters; the carousel always shows the featured set.
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.content.LoadAll(r.Context())
	if err != nil {
		logAndInternalError(w, "loading content", "error", err)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = model.AllCategories
	}
	query := r.URL.Query().Get("q")

	h.syncRotator(snapshot)

	data := homeData{
		Featured:       model.Featured(snapshot.Articles),
		Articles:       service.FilterArticles(snapshot.Articles, category, query),
		Categories:     model.Categories,
		ActiveCategory: category,
		Query:          query,
	}
	if slide, ok := h.rotator.Current(); ok {
		data.Slide = &slide
		data.SlideIndex = h.rotator.Index()
	}

	if err := h.renderer.Render(w, r, "site/home", render.TemplateData{
		Settings: snapshot.Settings,
		Data:     data,
	}); err != nil {
		logAndInternalError(w, "rendering home page", "error", err)
	}
}

// Article renders the article detail page. The slug is resolved through
// the view state machine, so a slug that matches nothing, typically a
// stale link after a deletion, falls back to the home page.
func (h *SiteHandler) Article(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	snapshot, err := h.content.LoadAll(r.Context())
	if err != nil {
		logAndInternalError(w, "loading content", "error", err)
		return
	}

	state := view.Resolve(view.ArticleToken(slug), snapshot.Articles)
	if state.Screen != view.ScreenDetail {
		http.Redirect(w, r, routeRoot, http.StatusSeeOther)
		return
	}
	article := *state.Selected

	if err := h.renderer.Render(w, r, "site/article", render.TemplateData{
		Title:    article.Title,
		Settings: snapshot.Settings,
		Data:     article,
	}); err != nil {
		logAndInternalError(w, "rendering article page", "slug", slug, "error", err)
	}
}

// FeaturedNext advances the carousel one slide and returns to the home
// page. Advancing also restarts the auto-rotation timer.
func (h *SiteHandler) FeaturedNext(w http.ResponseWriter, r *http.Request) {
	if snapshot, err := h.content.LoadAll(r.Context()); err == nil {
		h.syncRotator(snapshot)
	}
	h.rotator.Next()
	http.Redirect(w, r, routeRoot, http.StatusSeeOther)
}

// FeaturedPrev steps the carousel back one slide.
func (h *SiteHandler) FeaturedPrev(w http.ResponseWriter, r *http.Request) {
	if snapshot, err := h.content.LoadAll(r.Context()); err == nil {
		h.syncRotator(snapshot)
	}
	h.rotator.Prev()
	http.Redirect(w, r, routeRoot, http.StatusSeeOther)
}

// FeaturedSelect jumps the carousel to the given slide index. Indexes
// outside the featured set are ignored.
func (h *SiteHandler) FeaturedSelect(w http.ResponseWriter, r *http.Request) {
	if snapshot, err := h.content.LoadAll(r.Context()); err == nil {
		h.syncRotator(snapshot)
	}
	if index, err := strconv.Atoi(chi.URLParam(r, "index")); err == nil {
		h.rotator.Select(index)
	}
	http.Redirect(w, r, routeRoot, http.StatusSeeOther)
}

// syncRotator feeds the rotator the current featured set so slide
// indexes stay valid after articles change.
func (h *SiteHandler) syncRotator(snapshot *service.Snapshot) {
	h.rotator.SetArticles(model.Featured(snapshot.Articles))
}
