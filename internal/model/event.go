// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Event log levels.
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event log categories.
const (
	EventCategoryAuth     = "auth"
	EventCategoryArticle  = "article"
	EventCategorySettings = "settings"
	EventCategoryUpload   = "upload"
	EventCategoryAI       = "ai"
	EventCategorySystem   = "system"
)

// Event is an audit log entry recorded for auth activity and for WARN+
// application logs.
type Event struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	UserID    *int64    `json:"user_id,omitempty"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}
