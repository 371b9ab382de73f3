package handler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
)

func TestArticle_Create(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	form := url.Values{
		"title":      {"Élections générales : le calendrier officiel publié"},
		"category":   {"Politique"},
		"author":     {"Rédaction"},
		"content":    {"<p>Le calendrier électoral a été publié ce lundi.</p>"},
		"media_type": {"image"},
		"media_url":  {""},
		"featured":   {"1"},
	}
	rec := app.do(t, http.MethodPost, "/admin/articles", form, cookies)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	wantSlug := "elections-generales-le-calendrier-officiel-publie"
	if loc := rec.Header().Get("Location"); loc != "/article/"+wantSlug {
		t.Errorf("expected redirect to new article, got %s", loc)
	}

	article, found, err := app.content.ArticleBySlug(context.Background(), wantSlug)
	if err != nil {
		t.Fatalf("loading created article: %v", err)
	}
	if !found {
		t.Fatal("created article not found by slug")
	}
	if !article.Featured {
		t.Error("expected featured flag to be set")
	}
	if article.Author != "Rédaction" {
		t.Errorf("unexpected author %q", article.Author)
	}
}

func TestArticle_CreateStripsScripts(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	form := url.Values{
		"title":      {"Test assainissement"},
		"category":   {"Société"},
		"author":     {"Rédaction"},
		"content":    {"<p>Texte</p><script>alert('xss')</script>"},
		"media_type": {"image"},
	}
	rec := app.do(t, http.MethodPost, "/admin/articles", form, cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	article, found, err := app.content.ArticleBySlug(context.Background(), "test-assainissement")
	if err != nil || !found {
		t.Fatalf("loading created article: found=%v err=%v", found, err)
	}
	if strings.Contains(article.Content, "<script>") {
		t.Error("script tags must be stripped from stored content")
	}
}

func TestArticle_CreateInvalidCategory(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	form := url.Values{
		"title":      {"Catégorie invalide"},
		"category":   {"Sports"},
		"author":     {"Rédaction"},
		"content":    {"<p>Texte</p>"},
		"media_type": {"image"},
	}
	rec := app.do(t, http.MethodPost, "/admin/articles", form, cookies)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/articles/new" {
		t.Errorf("expected redirect back to the form, got %s", loc)
	}
	if _, found, _ := app.content.ArticleBySlug(context.Background(), "categorie-invalide"); found {
		t.Error("invalid article must not be stored")
	}
}

func TestArticle_Update(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	snapshot, err := app.content.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	existing := snapshot.Articles[0]

	form := url.Values{
		"title":      {"Titre mis à jour"},
		"category":   {existing.Category},
		"author":     {existing.Author},
		"content":    {existing.Content},
		"media_type": {string(existing.Media.Type)},
		"media_url":  {existing.Media.URL},
	}
	id := strconv.FormatInt(existing.ID, 10)
	rec := app.do(t, http.MethodPost, "/admin/articles/"+id, form, cookies)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	updated, found, err := app.content.ArticleBySlug(context.Background(), "titre-mis-a-jour")
	if err != nil || !found {
		t.Fatalf("loading updated article: found=%v err=%v", found, err)
	}
	if updated.ID != existing.ID {
		t.Errorf("update must keep the id, got %d want %d", updated.ID, existing.ID)
	}
	if _, found, _ := app.content.ArticleBySlug(context.Background(), existing.Slug); found {
		t.Error("old slug should no longer resolve after a title change")
	}
}

func TestArticle_UpdateMissing(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	form := url.Values{
		"title":      {"Inexistant"},
		"category":   {"Politique"},
		"author":     {"Rédaction"},
		"content":    {"<p>Texte</p>"},
		"media_type": {"image"},
	}
	rec := app.do(t, http.MethodPost, "/admin/articles/9999", form, cookies)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %s", loc)
	}
}

func TestArticle_DeleteRequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	snapshot, err := app.content.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	existing := snapshot.Articles[0]
	id := strconv.FormatInt(existing.ID, 10)

	// No confirm field: nothing may be deleted
	rec := app.do(t, http.MethodPost, "/admin/articles/"+id+"/delete", url.Values{}, cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if _, found, _ := app.content.ArticleBySlug(context.Background(), existing.Slug); !found {
		t.Fatal("article must survive an unconfirmed delete")
	}

	// Confirmed delete removes the article
	rec = app.do(t, http.MethodPost, "/admin/articles/"+id+"/delete", url.Values{"confirm": {"yes"}}, cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if _, found, _ := app.content.ArticleBySlug(context.Background(), existing.Slug); found {
		t.Fatal("article should be gone after a confirmed delete")
	}
}

func TestArticle_NewForm(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	rec := app.do(t, http.MethodGet, "/admin/articles/new", nil, cookies)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Nouvel article") {
		t.Error("expected the new-article heading")
	}
	if !strings.Contains(body, "Tribune Libre") {
		t.Error("expected all categories in the select")
	}
}

func TestArticle_EditForm(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	snapshot, err := app.content.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	existing := plainTitleArticle(t, snapshot.Articles)
	id := strconv.FormatInt(existing.ID, 10)

	rec := app.do(t, http.MethodGet, "/admin/articles/"+id, nil, cookies)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), existing.Title) {
		t.Error("expected existing title in the form")
	}
}

func TestArticle_EditFormUnknownID(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t)

	rec := app.do(t, http.MethodGet, "/admin/articles/9999", nil, cookies)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %s", loc)
	}
}
