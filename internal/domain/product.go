package domain

import (
	"net/url"
	"strings"
	"time"
)

type ProductStatus string

const (
	ProductDraft    ProductStatus = "draft"
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
	ProductArchived ProductStatus = "archived"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductDraft, ProductActive, ProductInactive, ProductArchived:
		return true
	}
	return false
}

// LowStockThreshold matches the backend's low_stock flag.
const LowStockThreshold = 10

type Product struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	ImageURL    string        `json:"image_url,omitempty"`
	Status      ProductStatus `json:"status"`
	Views       int           `json:"views"`
	Purchases   int           `json:"purchases"`
	LowStock    bool          `json:"low_stock"`
	OutOfStock  bool          `json:"out_of_stock"`
	CreatedAt   time.Time     `json:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at,omitempty"`
}

// StockBadge is "out", "low" or "ok".
func (p Product) StockBadge() string {
	switch {
	case p.OutOfStock || p.Stock <= 0:
		return "out"
	case p.LowStock || p.Stock < LowStockThreshold:
		return "low"
	default:
		return "ok"
	}
}

type ProductFilter struct {
	Category string        `json:"category,omitempty"`
	Status   ProductStatus `json:"status,omitempty"`
	Search   string        `json:"search,omitempty"`
}

func (f ProductFilter) Normalize() ProductFilter {
	return ProductFilter{
		Category: strings.TrimSpace(f.Category),
		Status:   ProductStatus(strings.TrimSpace(string(f.Status))),
		Search:   strings.TrimSpace(f.Search),
	}
}

// Query encodes the filter as backend query parameters; empty fields are omitted.
func (f ProductFilter) Query() url.Values {
	q := url.Values{}
	f = f.Normalize()
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// Key is a stable cache key for the filter.
func (f ProductFilter) Key() string { return f.Query().Encode() }
