// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package media resolves article media into the URLs the templates
// embed: images pass through, videos get YouTube embed and thumbnail
// URLs, PDFs viewer and download links.
package media

import (
	"regexp"
	"strings"

	"github.com/elikiamedia/elikia/internal/model"
)

// youtubeIDPattern matches the video ID in the common YouTube URL forms
// (youtu.be short links, /v/, /embed/, watch?v= and &v= parameters).
var youtubeIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// Placeholder thumbnails used when no video ID can be extracted.
const (
	PlaceholderThumb      = "https://picsum.photos/400/225?grayscale"
	PlaceholderThumbLarge = "https://picsum.photos/1200/500?grayscale"
)

// YouTubeID extracts the 11-character video ID from a YouTube URL.
// Returns "" and false when the URL does not contain a valid ID.
func YouTubeID(url string) (string, bool) {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return "", false
	}
	return m[2], true
}

// EmbedURL converts a YouTube watch URL to its embeddable form.
// URLs that are already embeddable pass through unchanged.
func EmbedURL(url string) string {
	return strings.Replace(url, "watch?v=", "embed/", 1)
}

// Thumbnail returns a card-sized thumbnail URL for a video.
func Thumbnail(url string) string {
	id, ok := YouTubeID(url)
	if !ok {
		return PlaceholderThumb
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}

// ThumbnailLarge returns a carousel-sized thumbnail URL for a video.
func ThumbnailLarge(url string) string {
	id, ok := YouTubeID(url)
	if !ok {
		return PlaceholderThumbLarge
	}
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}

// View carries the resolved rendering data for one media attachment.
type View struct {
	Type model.MediaType

	// URL is the direct media URL: image source, PDF document, or the
	// original video link.
	URL string

	// EmbedURL is the iframe source for videos.
	EmbedURL string

	// ThumbURL is the preview image for cards and carousel slides.
	ThumbURL string

	// Filename is the suggested download name for PDFs.
	Filename string
}

// Resolve builds the rendering view for a media attachment. Unknown
// media types resolve to an empty image view so templates degrade to a
// grey placeholder block.
func Resolve(m model.Media) View {
	switch m.Type {
	case model.MediaImage:
		return View{Type: model.MediaImage, URL: m.URL, ThumbURL: m.URL}
	case model.MediaVideo:
		return View{
			Type:     model.MediaVideo,
			URL:      m.URL,
			EmbedURL: EmbedURL(m.URL),
			ThumbURL: Thumbnail(m.URL),
		}
	case model.MediaPDF:
		return View{
			Type:     model.MediaPDF,
			URL:      m.URL,
			Filename: m.Filename,
		}
	default:
		return View{Type: model.MediaImage}
	}
}

// ResolveLarge is like Resolve but uses the carousel-sized video thumbnail.
func ResolveLarge(m model.Media) View {
	v := Resolve(m)
	if m.Type == model.MediaVideo {
		v.ThumbURL = ThumbnailLarge(m.URL)
	}
	return v
}
