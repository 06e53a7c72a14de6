package service

import (
	"time"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

type LookupSource string

const (
	SourceCache   LookupSource = "cache"
	SourceBackend LookupSource = "backend"
)

type LookupStats struct {
	Source    LookupSource `json:"source"`
	CacheMs   float64      `json:"cache_ms"`
	BackendMs float64      `json:"backend_ms"`
}

// Counts are the summary chips above the product grid.
type Counts struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

type Listing struct {
	Products []domain.Product     `json:"products"`
	Counts   Counts               `json:"counts"`
	Filter   domain.ProductFilter `json:"filter"`
}

func countProducts(products []domain.Product) Counts {
	c := Counts{Total: len(products)}
	for _, p := range products {
		if p.Status == domain.ProductActive {
			c.Active++
		}
		switch p.StockBadge() {
		case "out":
			c.OutOfStock++
		case "low":
			c.LowStock++
		}
	}
	return c
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
