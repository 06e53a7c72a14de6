package cache

import (
	"context"
	"time"

	"github.com/TemirB/bakeflow-admin/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

type repo interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

// Cache keeps product listings per filter for a short TTL.
type Cache struct {
	size int
	lru  *expirable.LRU[string, []domain.Product]
}

func New(size int, ttl time.Duration) *Cache {
	if size < 1 {
		size = 1
	}
	return &Cache{
		size: size,
		lru:  expirable.NewLRU[string, []domain.Product](size, nil, ttl),
	}
}

// Warm preloads the unfiltered listing; errors leave the cache cold.
func (c *Cache) Warm(ctx context.Context, repo repo) {
	if products, err := repo.ListProducts(ctx, domain.ProductFilter{}); err == nil {
		c.Set(domain.ProductFilter{}, products)
	}
}

func (c *Cache) Get(filter domain.ProductFilter) ([]domain.Product, bool) {
	products, ok := c.lru.Get(filter.Key())
	if !ok {
		return nil, false
	}
	return append([]domain.Product(nil), products...), true
}

func (c *Cache) Set(filter domain.ProductFilter, products []domain.Product) {
	c.lru.Add(filter.Key(), append([]domain.Product(nil), products...))
}

// Purge drops every listing; any product mutation can change every filter's result.
func (c *Cache) Purge() {
	c.lru.Purge()
}

func (c *Cache) Len() int { return c.lru.Len() }
