// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/elikiamedia/elikia/internal/ai"
	"github.com/elikiamedia/elikia/internal/cache"
	"github.com/elikiamedia/elikia/internal/carousel"
	"github.com/elikiamedia/elikia/internal/config"
	"github.com/elikiamedia/elikia/internal/handler"
	"github.com/elikiamedia/elikia/internal/logging"
	"github.com/elikiamedia/elikia/internal/middleware"
	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/render"
	"github.com/elikiamedia/elikia/internal/service"
	"github.com/elikiamedia/elikia/internal/session"
	"github.com/elikiamedia/elikia/internal/store"
	"github.com/elikiamedia/elikia/internal/version"
	"github.com/elikiamedia/elikia/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "ELIKIA MEDIA - African news publishing\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ELIKIA_SESSION_SECRET     Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ELIKIA_DB_PATH            SQLite database path (default: ./data/elikia.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ELIKIA_SERVER_PORT        Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ELIKIA_ENV                Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ELIKIA_UPLOADS_DIR        Uploaded media directory (default: ./data/uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ELIKIA_REDIS_URL          Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ELIKIA_OPENAI_API_KEY     OpenAI API key for draft generation (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ELIKIA_CAROUSEL_INTERVAL  Carousel rotation in seconds (default: 5)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Println("elikia " + info.String())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.SeedAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}

	// Session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Content cache, Redis-backed when configured
	cacheConfig := cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}
	contentCache, err := cache.New(cacheConfig)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() { _ = contentCache.Close() }()
	if cfg.UseRedisCache() {
		slog.Info("cache initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("cache initialized", "backend", "memory")
	}

	// Template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	// Services
	content := service.NewContentService(db, contentCache)
	uploads, err := service.NewUploadService(cfg.UploadsDir)
	if err != nil {
		return fmt.Errorf("initializing uploads: %w", err)
	}
	generator := ai.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if generator.Enabled() {
		slog.Info("ai draft generation enabled", "model", cfg.OpenAIModel)
	}

	// Carousel rotator, primed with the featured articles. The first
	// load also seeds the database when it is empty.
	rotator := carousel.NewRotator(time.Duration(cfg.CarouselInterval) * time.Second)
	defer rotator.Stop()

	snapshot, err := content.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	rotator.SetArticles(model.Featured(snapshot.Articles))
	slog.Info("content loaded", "articles", len(snapshot.Articles), "featured", rotator.Len())

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(sessionManager.LoadAndSave)

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	r.Use(middleware.CSRF(csrfConfig))
	slog.Info("CSRF protection initialized")

	// Handlers
	site := handler.NewSiteHandler(content, renderer, rotator)
	authHandler := handler.NewAuthHandler(db, content, renderer, sessionManager)
	articles := handler.NewArticleHandler(db, content, renderer, generator)
	settingsHandler := handler.NewSettingsHandler(db, content, renderer)
	uploadHandler := handler.NewUploadHandler(db, uploads)
	aiHandler := handler.NewAIHandler(db, generator)

	// Public routes
	r.Get("/", site.Home)
	r.Get("/article/{slug}", site.Article)
	r.Get("/featured/next", site.FeaturedNext)
	r.Get("/featured/prev", site.FeaturedPrev)
	r.Get("/featured/{index}", site.FeaturedSelect)

	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadUser(sessionManager, db))

		r.Get("/admin/articles/new", articles.NewForm)
		r.Post("/admin/articles", articles.Create)
		r.Get("/admin/articles/{id}", articles.EditForm)
		r.Put("/admin/articles/{id}", articles.Update)
		r.Post("/admin/articles/{id}", articles.Update) // HTML forms can't send PUT
		r.Delete("/admin/articles/{id}", articles.Delete)
		r.Post("/admin/articles/{id}/delete", articles.Delete)

		r.Get("/admin/settings", settingsHandler.Form)
		r.Put("/admin/settings", settingsHandler.Save)
		r.Post("/admin/settings", settingsHandler.Save)

		r.Post("/admin/upload", uploadHandler.Upload)
		r.Post("/admin/generate", aiHandler.Generate)
	})

	// Static assets from the embedded filesystem
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Uploaded media from the uploads directory
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	// Unknown paths fall back to the home page, mirroring how stale
	// article links resolve
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/", http.StatusSeeOther)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
