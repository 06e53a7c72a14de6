// Package storage provides the key/value "local storage" the console keeps its
// client-side state in (seen orders, UI language).
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/config"
)

var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open picks the driver configured in STORAGE_DRIVER.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (Store, error) {
	logger.Info("opening local storage",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("path", cfg.Storage.Path),
	)

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return NewMemory(), nil
	case config.DriverFile:
		return NewFile(cfg.Storage.Path)
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.Storage.Path)
	case config.DriverPostgres:
		pool, err := Connect(ctx, cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		s := NewPostgres(pool, cfg.Storage.Schema, cfg.Storage.Table)
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Storage.Driver)
	}
}
