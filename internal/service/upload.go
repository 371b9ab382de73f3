// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/mozillazg/go-unidecode"
)

// MaxUploadSize caps uploaded files at 20 MB.
const MaxUploadSize = 20 << 20

// maxImageWidth is the bound beyond which uploaded images are resized.
const maxImageWidth = 1600

// ErrUnsupportedUpload is returned for file types other than the
// accepted images and PDF.
var ErrUnsupportedUpload = errors.New("type de fichier non pris en charge")

var uploadNameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// UploadService stores uploaded media files on disk and hands back
// their public URLs.
type UploadService struct {
	dir string
}

// NewUploadService creates an UploadService writing into dir, creating
// it when absent.
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *UploadService) Dir() string {
	return s.dir
}

// Save stores an uploaded file and returns its public URL path.
// Images wider than 1600px are scaled down; PDFs are stored as-is.
func (s *UploadService) Save(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("fichier trop volumineux (max %d Mo)", MaxUploadSize>>20)
	}

	contentType := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(contentType, "image/"):
		data, err = s.normalizeImage(data, contentType)
		if err != nil {
			return "", err
		}
	case contentType == "application/pdf":
		// stored as-is
	default:
		return "", ErrUnsupportedUpload
	}

	name := uploadName(filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	slog.Info("file uploaded", "name", name, "size", len(data), "type", contentType)
	return "/uploads/" + name, nil
}

// normalizeImage re-encodes oversized JPEG and PNG images at the
// maximum width. Other image formats are stored untouched.
func (s *UploadService) normalizeImage(data []byte, contentType string) ([]byte, error) {
	ext := extensionFor(contentType)
	if ext == "" {
		return data, nil
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if img.Bounds().Dx() <= maxImageWidth {
		return data, nil
	}

	resized := imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, fmt.Errorf("encoding resized image: %w", err)
	}
	return buf.Bytes(), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	default:
		return ""
	}
}

// uploadName builds a unique storage name: a millisecond timestamp
// prefix plus the transliterated, sanitized original filename.
func uploadName(filename string) string {
	base := filepath.Base(filename)
	base = unidecode.Unidecode(base)
	base = uploadNameUnsafe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "fichier"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), strings.ToLower(base))
}
