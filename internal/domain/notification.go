package domain

import (
	"strconv"
	"time"
)

// Notification announces one newly observed pending order. ID is the order id.
type Notification struct {
	ID        int64     `json:"id"`
	Customer  string    `json:"customer"`
	Summary   string    `json:"summary"`
	OrderTime time.Time `json:"order_time"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

func NewNotification(o Order, now time.Time) Notification {
	return Notification{
		ID:        o.ID,
		Customer:  o.Customer(),
		Summary:   o.ItemSummary(),
		OrderTime: o.CreatedAt,
		CreatedAt: now,
	}
}

// RelativeTime renders "Just now", "N min ago", "Nh ago" or "Nd ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return strconv.Itoa(int(d/time.Minute)) + " min ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d/time.Hour)) + "h ago"
	default:
		return strconv.Itoa(int(d/(24*time.Hour))) + "d ago"
	}
}
