// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// MediaType tags the media variant attached to an article.
type MediaType string

// Media variants.
const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaPDF   MediaType = "pdf"
)

// Upload MIME types accepted for article images.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
)

// Media is the tagged media value carried by an article. Filename is only
// meaningful for the pdf variant, where it names the download.
type Media struct {
	Type     MediaType `json:"type"`
	URL      string    `json:"url"`
	Filename string    `json:"filename,omitempty"`
}

// IsValidMediaType reports whether t is a known media variant.
func IsValidMediaType(t MediaType) bool {
	switch t {
	case MediaImage, MediaVideo, MediaPDF:
		return true
	default:
		return false
	}
}
