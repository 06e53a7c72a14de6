package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TemirB/bakeflow-admin/internal/backend"
	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/observability"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

// ErrLoadProducts is what the products page shows when the listing fails.
var ErrLoadProducts = errors.New("failed to load products")

type Cache interface {
	Get(domain.ProductFilter) ([]domain.Product, bool)
	Set(domain.ProductFilter, []domain.Product)
	Purge()
}

type Backend interface {
	ListProducts(context.Context, domain.ProductFilter) ([]domain.Product, error)
	DeleteProduct(context.Context, int64) error
	UpdateProductStatus(context.Context, int64, domain.ProductStatus) error
}

type Toaster interface {
	Success(message string)
	Danger(message string)
}

type Service struct {
	cache   Cache
	backend Backend
	toasts  Toaster
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewService(cache Cache, backend Backend, toasts Toaster, logger *zap.Logger, metrics observability.Metrics) *Service {
	return &Service{
		cache:   cache,
		backend: backend,
		toasts:  toasts,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Service) List(ctx context.Context, filter domain.ProductFilter) (Listing, error) {
	l, _, err := s.ListWithStats(ctx, filter)
	return l, err
}

func (s *Service) ListWithStats(ctx context.Context, filter domain.ProductFilter) (Listing, LookupStats, error) {
	var st LookupStats
	filter = filter.Normalize()

	// Try cache
	tCacheStart := time.Now()
	if products, ok := s.cache.Get(filter); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCacheStart)
		s.metrics.IncCacheHit()
		s.metrics.ObserveLookup(string(st.Source), st.CacheMs, 0)
		return newListing(filter, products), st, nil
	}

	// Try backend
	s.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tBackendStart := time.Now()
	products, err := s.backend.ListProducts(ctx, filter)
	if err != nil {
		s.logger.Error("Can't load products",
			zap.String("filter", filter.Key()),
			zap.Error(err),
		)
		return Listing{}, st, fmt.Errorf("%w: %w", ErrLoadProducts, err)
	}

	st.Source = SourceBackend
	st.BackendMs = convertToMs(tBackendStart)
	s.cache.Set(filter, products)

	s.metrics.ObserveLookup(string(st.Source), st.CacheMs, st.BackendMs)
	s.logger.Debug("Products fetched from backend",
		zap.String("filter", filter.Key()),
		zap.Int("count", len(products)),
		zap.Float64("backend_ms", st.BackendMs),
	)
	return newListing(filter, products), st, nil
}

// Archive soft-deletes a product.
func (s *Service) Archive(ctx context.Context, id int64) error {
	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		s.logger.Warn("product archive failed", zap.Int64("product_id", id), zap.Error(err))
		s.toasts.Danger(mutationFailure(err, "Failed to archive product", "Error archiving product"))
		return err
	}
	s.cache.Purge()
	s.logger.Info("product archived", zap.Int64("product_id", id))
	s.toasts.Success("Product archived successfully")
	return nil
}

func (s *Service) SetStatus(ctx context.Context, id int64, status domain.ProductStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	if err := s.backend.UpdateProductStatus(ctx, id, status); err != nil {
		s.logger.Warn("product status update failed",
			zap.Int64("product_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		s.toasts.Danger(mutationFailure(err, "Failed to update status", "Error updating status"))
		return err
	}
	s.cache.Purge()
	s.logger.Info("product status updated", zap.Int64("product_id", id), zap.String("status", string(status)))
	if status == domain.ProductActive {
		s.toasts.Success("Product published")
	} else {
		s.toasts.Success("Product updated")
	}
	return nil
}

func newListing(filter domain.ProductFilter, products []domain.Product) Listing {
	if products == nil {
		products = []domain.Product{}
	}
	return Listing{Products: products, Counts: countProducts(products), Filter: filter}
}

// mutationFailure distinguishes a backend refusal from an unreachable backend.
func mutationFailure(err error, refused, unreachable string) string {
	if errors.Is(err, backend.ErrUnavailable) {
		return unreachable
	}
	return refused
}
