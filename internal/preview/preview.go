// Package preview manages the transient card that pops up for each new-order batch.
package preview

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

// VisibleEntries is how many orders the card lists before the "more" label.
const VisibleEntries = 3

type Card struct {
	Notifications []domain.Notification `json:"notifications"`
	Count         int                   `json:"count"`
	ShownAt       time.Time             `json:"shown_at"`
	ExpiresAt     time.Time             `json:"expires_at"`
}

// View is the rendered card.
type View struct {
	Title     string                `json:"title"`
	Entries   []domain.Notification `json:"entries"`
	More      int                   `json:"more"`
	MoreLabel string                `json:"more_label,omitempty"`
	ExpiresAt time.Time             `json:"expires_at"`
}

// Translate resolves a catalog key in the operator's language.
type Translate func(key string) string

// View renders the card with labels from the newOrder, newOrders, andMore
// and ordersLabel catalog keys.
func (c Card) View(t Translate) View {
	v := View{ExpiresAt: c.ExpiresAt}
	if c.Count == 1 {
		v.Title = t("newOrder")
	} else {
		v.Title = strconv.Itoa(c.Count) + " " + t("newOrders")
	}
	v.Entries = c.Notifications
	if len(v.Entries) > VisibleEntries {
		v.Entries = v.Entries[:VisibleEntries]
		v.More = len(c.Notifications) - VisibleEntries
		more := strings.ReplaceAll(t("andMore"), "{n}", strconv.Itoa(v.More))
		v.MoreLabel = more + " " + t("ordersLabel")
	}
	return v
}

type Manager struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	card  *Card
	gen   uint64
	timer *time.Timer
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{ttl: ttl, now: time.Now}
}

// Show replaces the visible card with batch and restarts the dismiss timer.
func (m *Manager) Show(batch []domain.Notification) {
	if len(batch) == 0 {
		return
	}
	items := make([]domain.Notification, len(batch))
	copy(items, batch)

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.card = &Card{
		Notifications: items,
		Count:         len(items),
		ShownAt:       now,
		ExpiresAt:     now.Add(m.ttl),
	}
	m.gen++
	gen := m.gen
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.ttl, func() { m.expire(gen) })
}

// expire clears the card only if no newer batch replaced it in the meantime.
func (m *Manager) expire(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		return
	}
	m.card = nil
	m.timer = nil
}

func (m *Manager) Current() (Card, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.card == nil {
		return Card{}, false
	}
	return *m.card, true
}

func (m *Manager) Dismiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.card = nil
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// Close stops the pending timer; the manager must not be used afterwards.
func (m *Manager) Close() { m.Dismiss() }
