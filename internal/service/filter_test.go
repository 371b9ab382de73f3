// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"testing"

	"github.com/elikiamedia/elikia/internal/model"
)

var filterFixture = []model.Article{
	{ID: 1, Title: "Sommet à Addis-Abeba", Category: "Politique", Author: "Jean Mutombo", Content: "<p>Les chefs d'État se réunissent.</p>"},
	{ID: 2, Title: "Croissance économique", Category: "Économie", Author: "Marie Kabongo", Content: "<p>Le PIB progresse.</p>"},
	{ID: 3, Title: "Festival de musique", Category: "Culture", Author: "Paul Ilunga", Content: "<p>Kinshasa vibre.</p>"},
}

func titles(articles []model.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

func TestFilterArticles_Identity(t *testing.T) {
	got := FilterArticles(filterFixture, model.AllCategories, "")
	if len(got) != len(filterFixture) {
		t.Errorf("Tous + empty term kept %d of %d articles", len(got), len(filterFixture))
	}

	got = FilterArticles(filterFixture, "", "")
	if len(got) != len(filterFixture) {
		t.Errorf("empty category + empty term kept %d of %d articles", len(got), len(filterFixture))
	}
}

func TestFilterArticles_Category(t *testing.T) {
	got := FilterArticles(filterFixture, "Culture", "")
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("Culture filter = %v", titles(got))
	}

	got = FilterArticles(filterFixture, "Sport", "")
	if len(got) != 0 {
		t.Errorf("unknown category matched %v", titles(got))
	}
}

func TestFilterArticles_TermCaseInsensitive(t *testing.T) {
	got := FilterArticles(filterFixture, model.AllCategories, "addis")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("term 'addis' = %v, want the Addis-Abeba article", titles(got))
	}
}

func TestFilterArticles_TermFields(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		wantID int64
	}{
		{"matches content", "pib", 2},
		{"matches author", "ilunga", 3},
		{"matches category", "économie", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArticles(filterFixture, model.AllCategories, tt.term)
			if len(got) != 1 || got[0].ID != tt.wantID {
				t.Errorf("term %q = %v, want article %d", tt.term, titles(got), tt.wantID)
			}
		})
	}
}

func TestFilterArticles_BothStages(t *testing.T) {
	// The term matches article 1 but the category stage removes it first
	got := FilterArticles(filterFixture, "Culture", "addis")
	if len(got) != 0 {
		t.Errorf("Culture + 'addis' = %v, want empty", titles(got))
	}
}

func TestFilterArticles_NoMatch(t *testing.T) {
	got := FilterArticles(filterFixture, model.AllCategories, "zanzibar")
	if len(got) != 0 {
		t.Errorf("got %v, want empty", titles(got))
	}
}

func TestFilterArticles_PreservesOrder(t *testing.T) {
	got := FilterArticles(filterFixture, model.AllCategories, "")
	for i, a := range got {
		if a.ID != filterFixture[i].ID {
			t.Fatalf("order changed at %d: %d", i, a.ID)
		}
	}
}
