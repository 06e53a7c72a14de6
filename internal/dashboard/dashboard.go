// Package dashboard derives the overview page from an order snapshot.
package dashboard

import (
	"sort"
	"time"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

const (
	popularLimit = 5
	salesDays    = 7
	recentLimit  = 10
)

type Stats struct {
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingOrders   int     `json:"pending_orders"`
	CompletedOrders int     `json:"completed_orders"`
}

type PopularItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DailySale struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type Overview struct {
	Stats        Stats          `json:"stats"`
	PopularItems []PopularItem  `json:"popular_items"`
	DailySales   []DailySale    `json:"daily_sales"`
	WeekTotal    float64        `json:"week_total"`
	RecentOrders []domain.Order `json:"recent_orders"`
	Error        string         `json:"error,omitempty"`
	Loading      bool           `json:"loading"`
	FetchedAt    time.Time      `json:"fetched_at,omitempty"`
}

// Build computes every dashboard block from one snapshot.
func Build(orders []domain.Order) Overview {
	daily := DailySales(orders)
	var week float64
	for _, d := range daily {
		week += d.Total
	}
	return Overview{
		Stats:        ComputeStats(orders),
		PopularItems: PopularItems(orders),
		DailySales:   daily,
		WeekTotal:    week,
		RecentOrders: Recent(orders, recentLimit),
	}
}

func ComputeStats(orders []domain.Order) Stats {
	s := Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		s.TotalRevenue += o.TotalAmount
		switch o.Status {
		case domain.StatusPending:
			s.PendingOrders++
		case domain.StatusDelivered:
			s.CompletedOrders++
		}
	}
	return s
}

// PopularItems ranks products by ordered quantity, ties broken by name.
func PopularItems(orders []domain.Order) []PopularItem {
	counts := make(map[string]int)
	for _, o := range orders {
		for _, it := range o.Items {
			counts[it.Product] += it.Quantity
		}
	}
	items := make([]PopularItem, 0, len(counts))
	for name, n := range counts {
		items = append(items, PopularItem{Name: name, Count: n})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > popularLimit {
		items = items[:popularLimit]
	}
	return items
}

// DailySales sums revenue per UTC day and keeps the last seven days that have orders.
func DailySales(orders []domain.Order) []DailySale {
	totals := make(map[string]float64)
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		totals[o.CreatedAt.UTC().Format(time.DateOnly)] += o.TotalAmount
	}
	days := make([]DailySale, 0, len(totals))
	for d, t := range totals {
		days = append(days, DailySale{Date: d, Total: t})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	if len(days) > salesDays {
		days = days[len(days)-salesDays:]
	}
	return days
}

func Recent(orders []domain.Order, n int) []domain.Order {
	if len(orders) < n {
		n = len(orders)
	}
	out := make([]domain.Order, n)
	copy(out, orders[:n])
	return out
}
