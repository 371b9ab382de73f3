// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain types shared by the store, services
// and handlers: articles, site settings, users and event log entries.
package model

import (
	"time"
)

// AllCategories is the sentinel category that matches every article.
const AllCategories = "Tous"

// Categories is the fixed set of article categories, in display order.
var Categories = []string{
	"Actualités",
	"Politique",
	"Économie",
	"Société",
	"Culture",
	"Tribune Libre",
}

// Article is a published news article.
type Article struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Category string    `json:"category"`
	Author   string    `json:"author"`
	Media    Media     `json:"media"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Featured bool      `json:"featured"`
}

// IsValidCategory reports whether c is one of the fixed categories.
// The AllCategories sentinel is a filter value, not a valid article category.
func IsValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// Featured returns the order-preserving subsequence of articles with the
// featured flag set. These are the carousel candidates.
func Featured(articles []Article) []Article {
	var out []Article
	for _, a := range articles {
		if a.Featured {
			out = append(out, a)
		}
	}
	return out
}
