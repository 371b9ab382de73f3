package handler

import (
	"context"
	"database/sql"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elikiamedia/elikia/internal/ai"
	"github.com/elikiamedia/elikia/internal/cache"
	"github.com/elikiamedia/elikia/internal/carousel"
	"github.com/elikiamedia/elikia/internal/middleware"
	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/render"
	"github.com/elikiamedia/elikia/internal/service"
	"github.com/elikiamedia/elikia/internal/session"
	"github.com/elikiamedia/elikia/internal/store"
	"github.com/elikiamedia/elikia/web"
)

// testApp assembles the full handler stack on a throwaway database.
type testApp struct {
	db      *sql.DB
	content *service.ContentService
	rotator *carousel.Rotator
	router  http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	if err := store.SeedAdmin(context.Background(), db, "", "", ""); err != nil {
		t.Fatalf("seeding admin: %v", err)
	}

	sm := session.New(db, true)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("creating renderer: %v", err)
	}

	memCache := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = memCache.Close() })
	content := service.NewContentService(db, memCache)

	rotator := carousel.NewRotator(time.Hour)
	t.Cleanup(rotator.Stop)

	uploads, err := service.NewUploadService(t.TempDir())
	if err != nil {
		t.Fatalf("creating upload service: %v", err)
	}

	generator := ai.NewGenerator("", "")

	site := NewSiteHandler(content, renderer, rotator)
	authHandler := NewAuthHandler(db, content, renderer, sm)
	articles := NewArticleHandler(db, content, renderer, generator)
	settingsHandler := NewSettingsHandler(db, content, renderer)
	uploadHandler := NewUploadHandler(db, uploads)
	aiHandler := NewAIHandler(db, generator)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)

	r.Get("/", site.Home)
	r.Get("/article/{slug}", site.Article)
	r.Get("/featured/next", site.FeaturedNext)
	r.Get("/featured/prev", site.FeaturedPrev)
	r.Get("/featured/{index}", site.FeaturedSelect)

	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(sm))
		r.Use(middleware.LoadUser(sm, db))
		r.Get("/admin/articles/new", articles.NewForm)
		r.Post("/admin/articles", articles.Create)
		r.Get("/admin/articles/{id}", articles.EditForm)
		r.Post("/admin/articles/{id}", articles.Update)
		r.Post("/admin/articles/{id}/delete", articles.Delete)
		r.Get("/admin/settings", settingsHandler.Form)
		r.Post("/admin/settings", settingsHandler.Save)
		r.Post("/admin/upload", uploadHandler.Upload)
		r.Post("/admin/generate", aiHandler.Generate)
	})

	return &testApp{
		db:      db,
		content: content,
		rotator: rotator,
		router:  r,
	}
}

// do runs a request through the router, carrying any session cookies.
func (a *testApp) do(t *testing.T, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// plainTitleArticle returns a seeded article whose title contains none
// of the characters html/template escapes, so raw substring checks on
// rendered pages stay reliable.
func plainTitleArticle(t *testing.T, articles []model.Article) model.Article {
	t.Helper()
	for _, a := range articles {
		if !strings.ContainsAny(a.Title+a.Author, `'"<>&`) {
			return a
		}
	}
	t.Fatal("no seeded article with an escape-free title")
	return model.Article{}
}

// login authenticates as the seeded admin and returns the session
// cookies to attach to subsequent requests.
func (a *testApp) login(t *testing.T) []*http.Cookie {
	t.Helper()

	form := url.Values{
		"email":    {store.DefaultAdminEmail},
		"password": {store.DefaultAdminPassword},
	}
	rec := a.do(t, http.MethodPost, "/login", form, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login: expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("login: expected redirect to /, got %s", loc)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login: expected a session cookie")
	}
	return cookies
}
