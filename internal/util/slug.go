// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug generation and validation.
package util

import (
	"regexp"
	"strings"
)

// Transliteration table for accented and special Latin characters. The two
// rune slices are positionally aligned; punctuation at the tail maps to
// hyphens. The table is fixed so that two saves of the same title always
// produce the same slug.
var (
	translitFrom = []rune("àáâäæãåāăąçćčđďèéêëēėęěğǵḧîïíīįìłḿñńǹňôöòóœøōõőṕŕřßśšşșťțûüùúūǘůűųẃẍÿýžźż·/_,:;")
	translitTo   = []rune("aaaaaaaaaacccddeeeeeeeegghiiiiiilmnnnnoooooooooprrsssssttuuuuuuuuuwxyyzzz------")

	translit = func() map[rune]rune {
		m := make(map[rune]rune, len(translitFrom))
		for i, r := range translitFrom {
			m[r] = translitTo[i]
		}
		return m
	}()
)

var (
	// whitespaceRun matches runs of whitespace
	whitespaceRun = regexp.MustCompile(`\s+`)
	// slugRegex matches characters outside the slug alphabet
	slugRegex = regexp.MustCompile(`[^a-z0-9_-]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL-friendly slug. The steps are ordered for
// reproducibility: lowercase, collapse whitespace runs to hyphens,
// transliterate the fixed character table, map "&" to "-and-", strip
// everything outside [a-z0-9_-], collapse repeated hyphens and trim
// leading/trailing hyphens. Empty input yields an empty string.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mapped, ok := translit[r]; ok {
			b.WriteRune(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	s = b.String()

	s = strings.ReplaceAll(s, "&", "-and-")
	s = slugRegex.ReplaceAllString(s, "")
	s = multipleHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	return s
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return false
		}
	}

	// No leading/trailing or consecutive hyphens
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	if strings.Contains(s, "--") {
		return false
	}

	return true
}
