// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/elikiamedia/elikia/internal/ai"
	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/service"
)

// AIHandler generates draft article content from a title and category.
type AIHandler struct {
	generator *ai.Generator
	events    *service.EventService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(db *sql.DB, generator *ai.Generator) *AIHandler {
	return &AIHandler{
		generator: generator,
		events:    service.NewEventService(db),
	}
}

// generateRequest is the JSON body for a generation request.
type generateRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Generate produces HTML article content for the given title and
// category. Generation failures never touch stored content.
func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if req.Title == "" {
		writeJSONError(w, http.StatusBadRequest, "Le titre est obligatoire")
		return
	}
	if req.Category == "" {
		req.Category = model.Categories[0]
	}

	content, err := h.generator.Generate(r.Context(), req.Title, req.Category)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			writeJSONError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		slog.Error("generating article content", "title", req.Title, "error", err)
		writeJSONError(w, http.StatusBadGateway, "Génération impossible")
		return
	}

	_ = h.events.LogInfo(r.Context(), model.EventCategoryAI, "Contenu généré", currentUserID(r), map[string]any{
		"title":    req.Title,
		"category": req.Category,
	})

	writeJSONSuccess(w, map[string]any{"content": content})
}
