// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package view derives which screen to show from a route token and the
// loaded article collection. Resolution is deterministic: a token that
// matches no article clears itself and falls back to the list.
package view

import (
	"strings"

	"github.com/elikiamedia/elikia/internal/model"
)

// Screen identifies the page being displayed.
type Screen string

const (
	ScreenList   Screen = "list"
	ScreenDetail Screen = "detail"
	ScreenForm   Screen = "form"
)

// articleTokenPrefix is the route token form for a selected article.
const articleTokenPrefix = "article/"

// State is the derived view state. It is computed from inputs and never
// stored.
type State struct {
	Screen   Screen
	Token    string
	Selected *model.Article
	Editing  *model.Article
}

// ArticleToken builds the route token selecting an article.
func ArticleToken(slug string) string {
	return articleTokenPrefix + slug
}

// TokenSlug extracts the slug from an article token.
// Returns "" and false for any other token.
func TokenSlug(token string) (string, bool) {
	if !strings.HasPrefix(token, articleTokenPrefix) {
		return "", false
	}
	slug := token[len(articleTokenPrefix):]
	if slug == "" {
		return "", false
	}
	return slug, true
}

// Resolve computes the state for a token against the loaded collection.
// It is called again whenever the token changes or the collection is
// reloaded, so a stale token self-corrects to the list without error.
func Resolve(token string, articles []model.Article) State {
	slug, ok := TokenSlug(token)
	if !ok {
		return State{Screen: ScreenList}
	}

	for i := range articles {
		if articles[i].Slug == slug {
			return State{
				Screen:   ScreenDetail,
				Token:    token,
				Selected: &articles[i],
			}
		}
	}

	// Unknown slug: clear the token and show the list
	return State{Screen: ScreenList}
}

// SelectArticle returns the token change for selecting an article. The
// screen itself follows from re-resolving against the collection.
func SelectArticle(a model.Article) string {
	return ArticleToken(a.Slug)
}

// EditArticle derives the form state for editing an existing article or,
// with nil, creating a new one.
func EditArticle(a *model.Article) State {
	return State{Screen: ScreenForm, Editing: a}
}
