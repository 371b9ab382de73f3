// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"io/fs"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/web"
)

func templatesFS(t *testing.T) fs.FS {
	t.Helper()
	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}
	return sub
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Config{TemplatesFS: templatesFS(t), IsDev: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNew_ParsesAllPages(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range []string{
		"site/home",
		"site/article",
		"admin/article_form",
		"admin/settings",
		"auth/login",
	} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	if err := r.Render(w, req, "site/inconnu", TemplateData{}); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestRender_ArticleDetail(t *testing.T) {
	r := newTestRenderer(t)

	article := model.Article{
		ID:       1,
		Title:    "Sommet à Addis-Abeba",
		Slug:     "sommet-a-addis-abeba",
		Category: "Politique",
		Author:   "Jean Mutombo",
		Content:  "<p>Le sommet s'est ouvert.</p>",
		Media:    model.Media{Type: model.MediaImage, URL: "/uploads/sommet.jpg"},
		Date:     time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/article/sommet-a-addis-abeba", nil)
	err := r.Render(w, req, "site/article", TemplateData{
		Title: article.Title,
		Data:  article,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := w.Body.String()
	for _, want := range []string{
		"<title>Sommet à Addis-Abeba | ELIKIA MEDIA</title>",
		"<p>Le sommet s'est ouvert.</p>",
		"14 juillet 2025",
		"/uploads/sommet.jpg",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRender_DefaultTitle(t *testing.T) {
	r := newTestRenderer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/login", nil)
	if err := r.Render(w, req, "auth/login", TemplateData{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(w.Body.String(), "<title>ELIKIA MEDIA</title>") {
		t.Error("default title missing")
	}
}

func TestFormatDateFrench(t *testing.T) {
	funcs := (&Renderer{}).templateFuncs()
	formatDate := funcs["formatDate"].(func(time.Time) string)

	got := formatDate(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))
	if got != "3 février 2025" {
		t.Errorf("formatDate = %q", got)
	}
}

func TestExcerptStripsTags(t *testing.T) {
	funcs := (&Renderer{}).templateFuncs()
	excerpt := funcs["excerpt"].(func(string, int) string)

	got := excerpt("<p>Bonjour <strong>le monde</strong></p>", 100)
	if got != "Bonjour le monde" {
		t.Errorf("excerpt = %q", got)
	}

	long := excerpt("<p>"+strings.Repeat("a", 200)+"</p>", 10)
	if long != strings.Repeat("a", 10)+"..." {
		t.Errorf("excerpt truncation = %q", long)
	}
}
