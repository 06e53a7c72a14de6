// Package poller keeps the order collection fresh and detects new orders.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/observability"
)

//go:generate mockgen -source internal/poller/poller.go -destination=internal/poller/poller_mock_test.go -package=poller

const ConnectError = "Cannot connect to backend."

type OrderSource interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type Notifier interface {
	Add(batch []domain.Notification)
}

type Previewer interface {
	Show(batch []domain.Notification)
}

type Dispatcher interface {
	Dispatch(batch []domain.Notification)
}

// Snapshot is what the order pages render.
type Snapshot struct {
	Orders    []domain.Order `json:"orders"`
	Error     string         `json:"error,omitempty"`
	Loading   bool           `json:"loading"`
	FetchedAt time.Time      `json:"fetched_at,omitempty"`
}

type Poller struct {
	source     OrderSource
	detector   *Detector
	notifier   Notifier
	previewer  Previewer
	dispatcher Dispatcher
	interval   time.Duration
	logger     *zap.Logger
	metrics    observability.Metrics

	mu      sync.Mutex
	seq     uint64
	applied uint64
	snap    Snapshot
	wg      sync.WaitGroup
}

func New(
	source OrderSource,
	tracker Tracker,
	notifier Notifier,
	previewer Previewer,
	dispatcher Dispatcher,
	interval time.Duration,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Poller {
	return &Poller{
		source:     source,
		detector:   NewDetector(tracker),
		notifier:   notifier,
		previewer:  previewer,
		dispatcher: dispatcher,
		interval:   interval,
		logger:     logger,
		metrics:    metrics,
		snap:       Snapshot{Orders: []domain.Order{}, Loading: true},
	}
}

// Run fetches immediately and then on every tick until ctx is done.
// A slow fetch never delays the next tick.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("order polling started", zap.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.spawn(ctx)
	for {
		select {
		case <-ctx.Done():
			p.wg.Wait()
			p.logger.Info("order polling stopped")
			return
		case <-ticker.C:
			p.spawn(ctx)
		}
	}
}

func (p *Poller) spawn(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		fctx, cancel := context.WithTimeout(ctx, p.interval)
		defer cancel()
		p.fetch(fctx)
	}()
}

// Refresh fetches out of band and returns once the result is applied or discarded.
func (p *Poller) Refresh(ctx context.Context) {
	p.fetch(ctx)
}

func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.snap
	s.Orders = append([]domain.Order(nil), p.snap.Orders...)
	return s
}

// Order looks an order up in the latest snapshot.
func (p *Poller) Order(id int64) (domain.Order, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, o := range p.snap.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (p *Poller) fetch(ctx context.Context) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	start := time.Now()
	orders, err := p.source.ListOrders(ctx)
	durMs := observability.SinceMs(start)
	p.metrics.ObservePoll(durMs, err == nil)

	batch, ok := p.apply(seq, orders, err)
	if !ok || len(batch) == 0 {
		return
	}

	p.metrics.ObserveNotifications(len(batch))
	p.logger.Info("new orders detected", zap.Int("count", len(batch)), zap.Int64("first_order_id", batch[0].ID))

	if p.dispatcher != nil {
		p.dispatcher.Dispatch(batch)
	}
}

// apply installs a fetch result unless a later fetch was applied already.
func (p *Poller) apply(seq uint64, orders []domain.Order, err error) ([]domain.Notification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq <= p.applied {
		p.logger.Debug("stale poll result discarded", zap.Uint64("seq", seq), zap.Uint64("applied", p.applied))
		return nil, false
	}
	p.applied = seq
	p.snap.Loading = false

	if err != nil {
		p.snap.Orders = []domain.Order{}
		p.snap.Error = errorMessage(err)
		p.logger.Warn("order poll failed", zap.Uint64("seq", seq), zap.Error(err))
		return nil, true
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	p.snap.Orders = orders
	p.snap.Error = ""
	p.snap.FetchedAt = time.Now()

	batch := p.detector.Observe(orders)
	if len(batch) > 0 {
		// under the lock so batches reach the center in fetch order
		p.notifier.Add(batch)
		p.previewer.Show(batch)
	}
	return batch, true
}

// errorMessage surfaces backend-reported errors verbatim; anything else is a connectivity problem.
func errorMessage(err error) string {
	var be *domain.BackendError
	if errors.As(err, &be) {
		return be.Error()
	}
	return ConnectError
}
