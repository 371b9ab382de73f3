// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package carousel keeps the rotating slide position for the featured
// articles strip on the home page.
package carousel

import (
	"sync"
	"time"

	"github.com/elikiamedia/elikia/internal/model"
)

// DefaultInterval is the auto-advance period between slides.
const DefaultInterval = 5 * time.Second

// Rotator tracks the current slide over a set of featured articles and
// advances it on a timer. With one slide or none the timer stays idle.
// All methods are safe for concurrent use.
type Rotator struct {
	mu       sync.Mutex
	articles []model.Article
	index    int
	interval time.Duration
	timer    *time.Timer
	stopped  bool
}

// NewRotator creates a rotator advancing every interval.
// A non-positive interval falls back to DefaultInterval.
func NewRotator(interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{interval: interval}
}

// SetArticles replaces the slide set. The position resets to the first
// slide whenever the current one would fall out of range.
func (r *Rotator) SetArticles(articles []model.Article) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.articles = articles
	if r.index >= len(articles) {
		r.index = 0
	}
	r.rescheduleLocked()
}

// Current returns the article at the current position.
// The second result is false when there are no slides.
func (r *Rotator) Current() (model.Article, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.articles) == 0 {
		return model.Article{}, false
	}
	return r.articles[r.index], true
}

// Index returns the current slide position.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Len returns the number of slides.
func (r *Rotator) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.articles)
}

// Next advances to the following slide, wrapping to the first after the
// last. Returns the new position.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanceLocked()
	r.rescheduleLocked()
	return r.index
}

// Prev moves to the preceding slide, wrapping to the last before the
// first. Returns the new position.
func (r *Rotator) Prev() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.articles); n > 1 {
		r.index = (r.index - 1 + n) % n
	}
	r.rescheduleLocked()
	return r.index
}

// Select jumps to the given position. Out-of-range positions are ignored.
func (r *Rotator) Select(i int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i >= 0 && i < len(r.articles) {
		r.index = i
	}
	r.rescheduleLocked()
	return r.index
}

// Stop halts the auto-advance timer. The rotator remains usable for
// manual navigation.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Rotator) advanceLocked() {
	if n := len(r.articles); n > 1 {
		r.index = (r.index + 1) % n
	}
}

// rescheduleLocked restarts the auto-advance timer. Any position change
// resets the full interval, matching how a reader expects the strip to
// pause after manual navigation.
func (r *Rotator) rescheduleLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if r.stopped || len(r.articles) <= 1 {
		return
	}
	r.timer = time.AfterFunc(r.interval, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.stopped {
			return
		}
		r.advanceLocked()
		r.rescheduleLocked()
	})
}
