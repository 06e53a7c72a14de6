// Package notify owns the notification center: the list of new-order
// notifications an operator has not cleared yet.
package notify

import (
	"sync"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

type EventKind string

const (
	EventAdded   EventKind = "added"
	EventRead    EventKind = "read"
	EventReadAll EventKind = "read_all"
	EventCleared EventKind = "cleared"
)

// Event describes one change of the center, fanned out to subscribers.
type Event struct {
	Kind          EventKind             `json:"kind"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
	ID            int64                 `json:"id,omitempty"`
	Unread        int                   `json:"unread"`
}

type Center struct {
	mu    sync.RWMutex
	items []domain.Notification
	max   int

	subMu  sync.Mutex
	subs   map[int]chan Event
	nextID int
}

// NewCenter keeps at most max notifications; 0 means unbounded.
func NewCenter(max int) *Center {
	return &Center{
		max:  max,
		subs: make(map[int]chan Event),
	}
}

// Add prepends a batch as unread, newest batch first.
func (c *Center) Add(batch []domain.Notification) {
	if len(batch) == 0 {
		return
	}
	fresh := make([]domain.Notification, len(batch))
	for i, n := range batch {
		n.Read = false
		fresh[i] = n
	}

	c.mu.Lock()
	c.items = append(fresh, c.items...)
	if c.max > 0 && len(c.items) > c.max {
		c.items = c.items[:c.max]
	}
	unread := c.unreadLocked()
	c.mu.Unlock()

	c.publish(Event{Kind: EventAdded, Notifications: fresh, Unread: unread})
}

func (c *Center) List() []domain.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Center) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.unreadLocked()
}

func (c *Center) HasUnread() bool { return c.UnreadCount() > 0 }

// MarkAsRead flags the notification for order id; false when it is not listed.
func (c *Center) MarkAsRead(id int64) bool {
	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			found = true
		}
	}
	unread := c.unreadLocked()
	c.mu.Unlock()

	if found {
		c.publish(Event{Kind: EventRead, ID: id, Unread: unread})
	}
	return found
}

func (c *Center) MarkAllRead() {
	c.mu.Lock()
	for i := range c.items {
		c.items[i].Read = true
	}
	c.mu.Unlock()

	c.publish(Event{Kind: EventReadAll})
}

// ClearAll empties the list. Seen orders stay seen, so nothing reappears.
func (c *Center) ClearAll() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	c.publish(Event{Kind: EventCleared})
}

func (c *Center) unreadLocked() int {
	n := 0
	for _, it := range c.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// Subscribe returns a buffered event channel and its cancel func.
func (c *Center) Subscribe() (<-chan Event, func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan Event, 16)
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			close(ch)
			c.subMu.Unlock()
		})
	}
	return ch, cancel
}

func (c *Center) publish(ev Event) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
