package orders

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/backend"
	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/observability"
)

//go:generate mockgen -source internal/orders/workflow.go -destination=internal/orders/workflow_mock_test.go -package=orders

type StatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.StatusUpdateResult, error)
}

// Snapshotter is the source of truth for current order statuses.
type Snapshotter interface {
	Order(id int64) (domain.Order, bool)
	Refresh(ctx context.Context)
}

type Toaster interface {
	Success(message string)
	Danger(message string)
}

type Workflow struct {
	backend StatusUpdater
	orders  Snapshotter
	toasts  Toaster
	logger  *zap.Logger
	metrics observability.Metrics

	mu       sync.Mutex
	updating map[int64]struct{}
}

func NewWorkflow(backend StatusUpdater, orders Snapshotter, toasts Toaster, logger *zap.Logger, metrics observability.Metrics) *Workflow {
	return &Workflow{
		backend:  backend,
		orders:   orders,
		toasts:   toasts,
		logger:   logger,
		metrics:  metrics,
		updating: make(map[int64]struct{}),
	}
}

func (w *Workflow) Updating(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.updating[id]
	return ok
}

// Advance moves order id one step forward. Nothing changes locally unless the
// backend accepts; on success the collection is re-fetched.
func (w *Workflow) Advance(ctx context.Context, id int64) (domain.OrderStatus, error) {
	o, ok := w.orders.Order(id)
	if !ok {
		return "", domain.ErrNotFound
	}
	next, ok := o.Status.Next()
	if !ok {
		return "", domain.ErrNoTransition
	}

	if !w.begin(id) {
		return "", domain.ErrUpdateInFlight
	}
	defer w.end(id)

	start := time.Now()
	res, err := w.backend.UpdateOrderStatus(ctx, id, next)
	w.metrics.ObserveStatusUpdate(observability.SinceMs(start), err == nil)
	if err != nil {
		w.logger.Warn("order status update failed",
			zap.Int64("order_id", id),
			zap.String("target", string(next)),
			zap.Error(err),
		)
		w.toasts.Danger(failureMessage(res, err))
		return "", err
	}

	w.logger.Info("order status updated",
		zap.Int64("order_id", id),
		zap.String("status", string(next)),
		zap.Bool("customer_notified", res.NotificationSent),
	)
	w.orders.Refresh(ctx)
	w.toasts.Success(SuccessMessage(id, next, res))
	return next, nil
}

func (w *Workflow) begin(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, busy := w.updating[id]; busy {
		return false
	}
	w.updating[id] = struct{}{}
	return true
}

func (w *Workflow) end(id int64) {
	w.mu.Lock()
	delete(w.updating, id)
	w.mu.Unlock()
}

func SuccessMessage(id int64, status domain.OrderStatus, res domain.StatusUpdateResult) string {
	msg := fmt.Sprintf("Order #%d updated to %s.", id, status)
	switch {
	case res.NotificationSent:
		msg += " Customer notified."
	case res.NotificationError != "":
		msg += " (No customer notification: " + res.NotificationError + ")"
	}
	return msg
}

func failureMessage(res domain.StatusUpdateResult, err error) string {
	if errors.Is(err, backend.ErrUnavailable) {
		return "Error connecting to server"
	}
	msg := "Failed to update order status"
	if res.NotificationError != "" {
		msg += " - " + res.NotificationError
	}
	return msg
}
