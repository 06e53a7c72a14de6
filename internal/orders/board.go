// Package orders builds the orders page and drives the status workflow.
package orders

import (
	"github.com/TemirB/bakeflow-admin/internal/domain"
)

// Filter values accepted by the orders page.
const FilterAll = "all"

type Step struct {
	Status    domain.OrderStatus `json:"status"`
	LabelKey  string             `json:"label_key"`
	Active    bool               `json:"active"`
	Completed bool               `json:"completed"`
}

type Action struct {
	LabelKey string             `json:"label_key"`
	Target   domain.OrderStatus `json:"target"`
}

type Card struct {
	Order     domain.Order `json:"order"`
	Steps     []Step       `json:"steps"`
	Action    *Action      `json:"action,omitempty"`
	Completed bool         `json:"completed"`
	Updating  bool         `json:"updating"`
}

var actionLabels = map[domain.OrderStatus]string{
	domain.StatusPending:   "startPreparing",
	domain.StatusPreparing: "markAsReady",
	domain.StatusReady:     "markAsDelivered",
}

// NextAction is the single forward action available for status.
func NextAction(status domain.OrderStatus) (Action, bool) {
	next, ok := status.Next()
	if !ok {
		return Action{}, false
	}
	return Action{LabelKey: actionLabels[status], Target: next}, true
}

// Timeline marks every step before the current one completed.
func Timeline(status domain.OrderStatus) []Step {
	rank := status.Rank()
	steps := make([]Step, 0, len(domain.OrderStatuses))
	for i, st := range domain.OrderStatuses {
		steps = append(steps, Step{
			Status:    st,
			LabelKey:  string(st),
			Active:    i == rank,
			Completed: rank >= 0 && i < rank,
		})
	}
	return steps
}

// ValidFilter reports whether f is "all" or a known status.
func ValidFilter(f string) bool {
	return f == "" || f == FilterAll || domain.OrderStatus(f).Valid()
}

// Board renders the cards for orders matching filter. updating reports in-flight updates.
func Board(orders []domain.Order, filter string, updating func(id int64) bool) []Card {
	cards := make([]Card, 0, len(orders))
	for _, o := range orders {
		if filter != "" && filter != FilterAll && string(o.Status) != filter {
			continue
		}
		c := Card{
			Order:     o,
			Steps:     Timeline(o.Status),
			Completed: o.Status.Terminal(),
		}
		if a, ok := NextAction(o.Status); ok {
			c.Action = &a
		}
		if updating != nil {
			c.Updating = updating(o.ID)
		}
		cards = append(cards, c)
	}
	return cards
}

// Counts per status, used by the filter tabs.
func Counts(orders []domain.Order) map[string]int {
	out := map[string]int{FilterAll: len(orders)}
	for _, st := range domain.OrderStatuses {
		out[string(st)] = 0
	}
	for _, o := range orders {
		out[string(o.Status)]++
	}
	return out
}
