// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the content business logic: article filtering,
// the data sync facade over the store, uploads and audit events.
package service

import (
	"strings"

	"github.com/elikiamedia/elikia/internal/model"
)

// FilterArticles narrows the article list in two stages: an exact
// category match (the "Tous" sentinel and the empty string pass
// everything), then a case-insensitive substring search over title,
// content, author and category. An empty term matches every article.
func FilterArticles(articles []model.Article, category, term string) []model.Article {
	needle := strings.ToLower(term)

	filtered := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if category != "" && category != model.AllCategories && a.Category != category {
			continue
		}
		if needle != "" && !matchesTerm(a, needle) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func matchesTerm(a model.Article, needle string) bool {
	return strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Content), needle) ||
		strings.Contains(strings.ToLower(a.Author), needle) ||
		strings.Contains(strings.ToLower(a.Category), needle)
}
