package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/pkg/pool"
)

//go:generate mockgen -source internal/notify/dispatch.go -destination=internal/notify/dispatch_mock_test.go -package=notify

// Sink receives every new batch outside the console (Kafka, chat bots).
type Sink interface {
	Publish(ctx context.Context, batch []domain.Notification) error
}

type Dispatcher struct {
	pool    *pool.Pool
	sinks   []Sink
	timeout time.Duration
	logger  *zap.Logger
}

func NewDispatcher(workers int, timeout time.Duration, logger *zap.Logger, sinks ...Sink) *Dispatcher {
	return &Dispatcher{
		pool:    pool.New(workers),
		sinks:   sinks,
		timeout: timeout,
		logger:  logger,
	}
}

// Dispatch hands the batch to every sink on the worker pool and returns at
// once. Batches that find the queue full are dropped.
func (d *Dispatcher) Dispatch(batch []domain.Notification) {
	if len(batch) == 0 {
		return
	}
	for _, s := range d.sinks {
		sink := s
		ok := d.pool.TrySubmit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()
			if err := sink.Publish(ctx, batch); err != nil {
				d.logger.Warn("notification sink failed", zap.Int("batch", len(batch)), zap.Error(err))
			}
		})
		if !ok {
			d.logger.Warn("sink queue full or closed, batch dropped", zap.Int("batch", len(batch)))
		}
	}
}

// Close waits for queued deliveries to finish.
func (d *Dispatcher) Close() {
	d.pool.Close()
	d.pool.Wait()
}
