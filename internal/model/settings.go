// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Settings is the singleton record holding site-wide social links and
// contact details. At most one row exists; it is created on first load.
type Settings struct {
	ID           int64  `json:"id"`
	FacebookURL  string `json:"facebookUrl"`
	WhatsappURL  string `json:"whatsappUrl"`
	YoutubeURL   string `json:"youtubeUrl"`
	TwitterURL   string `json:"twitterUrl"`
	InstagramURL string `json:"instagramUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	MapURL       string `json:"mapUrl"`
	Hours        string `json:"hours"`
}

// DefaultSettings returns the settings seeded on first run.
func DefaultSettings() Settings {
	return Settings{
		FacebookURL:  "#",
		WhatsappURL:  "#",
		YoutubeURL:   "#",
		TwitterURL:   "#",
		InstagramURL: "#",
		LinkedinURL:  "#",
		Email:        "contact@elikiamedia.com",
		Phone:        "+243 81 234 5678",
		Address:      "Kinshasa, RDC",
		MapURL:       "#",
		Hours:        "Lun-Ven: 8h-18h",
	}
}
