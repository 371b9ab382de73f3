// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/store"
)

// EventService records audit trail entries.
type EventService struct {
	queries *store.Queries
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{queries: store.New(db)}
}

// Log creates an event log entry.
func (s *EventService) Log(ctx context.Context, level, category, message string, userID *int64, metadata map[string]any) error {
	metadataJSON := "{}"
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(b)
		}
	}

	err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:    level,
		Category: category,
		Message:  message,
		UserID:   userID,
		Metadata: metadataJSON,
	})
	if err != nil {
		slog.Error("failed to record event", "category", category, "error", err)
		return err
	}
	return nil
}

// LogInfo records an info-level event.
func (s *EventService) LogInfo(ctx context.Context, category, message string, userID *int64, metadata map[string]any) error {
	return s.Log(ctx, model.EventLevelInfo, category, message, userID, metadata)
}

// LogWarning records a warning-level event.
func (s *EventService) LogWarning(ctx context.Context, category, message string, userID *int64, metadata map[string]any) error {
	return s.Log(ctx, model.EventLevelWarning, category, message, userID, metadata)
}

// LogAuth records an authentication event.
func (s *EventService) LogAuth(ctx context.Context, level, message string, userID *int64, metadata map[string]any) error {
	return s.Log(ctx, level, model.EventCategoryAuth, message, userID, metadata)
}

// Recent returns the latest event log entries.
func (s *EventService) Recent(ctx context.Context, limit int64) ([]model.Event, error) {
	return s.queries.ListRecentEvents(ctx, limit)
}
