// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "elikia-logging-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return db
}

func TestHandle_ForwardsToInner(t *testing.T) {
	db := testDB(t)

	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(NewEventLogHandler(inner, db))

	logger.Info("message informative")

	if !strings.Contains(buf.String(), "message informative") {
		t.Errorf("inner handler output missing message: %q", buf.String())
	}
}

func TestHandle_InfoNotPersisted(t *testing.T) {
	db := testDB(t)

	inner := slog.NewTextHandler(&bytes.Buffer{}, nil)
	logger := slog.New(NewEventLogHandler(inner, db))

	logger.Info("rien à signaler")

	events, err := store.New(db).ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no persisted events for INFO, got %d", len(events))
	}
}

func TestHandle_WarnAndErrorPersisted(t *testing.T) {
	db := testDB(t)

	inner := slog.NewTextHandler(&bytes.Buffer{}, nil)
	logger := slog.New(NewEventLogHandler(inner, db))

	logger.Warn("avertissement disque")
	logger.Error("échec de connexion", "category", model.EventCategoryAuth, "email", "x@y.z")

	events, err := store.New(db).ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 persisted events, got %d", len(events))
	}

	byMessage := map[string]model.Event{}
	for _, e := range events {
		byMessage[e.Message] = e
	}

	warn := byMessage["avertissement disque"]
	if warn.Level != model.EventLevelWarning {
		t.Errorf("warn level = %q", warn.Level)
	}
	errEvent := byMessage["échec de connexion"]
	if errEvent.Level != model.EventLevelError {
		t.Errorf("error level = %q", errEvent.Level)
	}
	if errEvent.Category != model.EventCategoryAuth {
		t.Errorf("category = %q, want %q", errEvent.Category, model.EventCategoryAuth)
	}
	if !strings.Contains(errEvent.Metadata, `"email":"x@y.z"`) {
		t.Errorf("metadata = %q, want email attribute", errEvent.Metadata)
	}
	if strings.Contains(errEvent.Metadata, "category") {
		t.Errorf("metadata should not repeat the category attribute: %q", errEvent.Metadata)
	}
}

func TestExtractCategory_Inference(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"login failed for user", model.EventCategoryAuth},
		{"article saved", model.EventCategoryArticle},
		{"settings updated", model.EventCategorySettings},
		{"upload rejected", model.EventCategoryUpload},
		{"generation timed out", model.EventCategoryAI},
		{"disk almost full", model.EventCategorySystem},
	}

	for _, tt := range tests {
		r := slog.Record{Message: tt.message}
		if got := extractCategory(r); got != tt.want {
			t.Errorf("extractCategory(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestEscapeJSON(t *testing.T) {
	got := escapeJSON("a\"b\\c\nd")
	want := `a\"b\\c\nd`
	if got != want {
		t.Errorf("escapeJSON = %q, want %q", got, want)
	}
}
