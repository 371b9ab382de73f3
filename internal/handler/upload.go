// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/elikiamedia/elikia/internal/model"
	"github.com/elikiamedia/elikia/internal/service"
)

// UploadHandler accepts media uploads for articles and returns the
// public URL of the stored file.
type UploadHandler struct {
	uploads *service.UploadService
	events  *service.EventService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(db *sql.DB, uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploads: uploads,
		events:  service.NewEventService(db),
	}
}

// Upload handles a multipart file upload and responds with JSON.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadSize)

	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Fichier trop volumineux ou formulaire invalide")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Aucun fichier reçu")
		return
	}
	defer file.Close()

	url, err := h.uploads.Save(file, header.Filename)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedUpload) {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Type de fichier non pris en charge")
			return
		}
		slog.Error("storing upload", "filename", header.Filename, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Téléversement impossible")
		return
	}

	_ = h.events.LogInfo(r.Context(), model.EventCategoryUpload, "Fichier téléversé", currentUserID(r), map[string]any{
		"filename": header.Filename,
		"url":      url,
	})

	writeJSONSuccess(w, map[string]any{"url": url})
}
