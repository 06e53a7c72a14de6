// Package toast holds the short-lived feedback message of a page.
package toast

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Danger  Kind = "danger"
)

type Toast struct {
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Board keeps at most one toast; a new one replaces the old.
type Board struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	cur *Toast
}

func NewBoard(ttl time.Duration) *Board {
	return &Board{ttl: ttl, now: time.Now}
}

func (b *Board) Show(kind Kind, message string) {
	b.mu.Lock()
	b.cur = &Toast{Message: message, Kind: kind, ExpiresAt: b.now().Add(b.ttl)}
	b.mu.Unlock()
}

func (b *Board) Success(message string) { b.Show(Success, message) }
func (b *Board) Danger(message string)  { b.Show(Danger, message) }

// Current returns the toast unless it expired.
func (b *Board) Current() (Toast, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cur == nil {
		return Toast{}, false
	}
	if !b.now().Before(b.cur.ExpiresAt) {
		b.cur = nil
		return Toast{}, false
	}
	return *b.cur, true
}

func (b *Board) Dismiss() {
	b.mu.Lock()
	b.cur = nil
	b.mu.Unlock()
}
