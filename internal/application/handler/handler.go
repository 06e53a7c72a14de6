// Package handler turns notification batch events from Kafka into chat messages.
package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/config"
	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/kafka"
	"github.com/TemirB/bakeflow-admin/internal/pkg/retry"
)

//go:generate mockgen -source internal/application/handler/handler.go -destination=internal/application/handler/handler_mock_test.go -package=handler

var (
	ErrBadJSON     = errors.New("bad json")
	ErrSend        = errors.New("send failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

const (
	dedupSize = 1024
	dedupTTL  = time.Hour
)

type Sender interface {
	Send(ctx context.Context, batch []domain.Notification) error
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

type Handler struct {
	sender      Sender
	breaker     brk
	logger      *zap.Logger
	retryPolicy config.Retry
	delivered   *expirable.LRU[string, struct{}]
}

func NewHandler(sender Sender, brk brk, retryPolicy config.Retry, logger *zap.Logger) *Handler {
	return &Handler{
		sender:      sender,
		breaker:     brk,
		logger:      logger,
		retryPolicy: retryPolicy,
		delivered:   expirable.NewLRU[string, struct{}](dedupSize, nil, dedupTTL),
	}
}

// Handle is called by the consumer for a single message; the consumer commits
// the offset after a nil return.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	ev, err := kafka.DecodeBatchEvent(message.Value)
	if err != nil {
		h.logger.Error("bad batch event",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %w: %v", kafka.ErrPoison, ErrBadJSON, err)
	}
	if h.delivered.Contains(ev.ID) {
		h.logger.Debug("batch event already delivered", zap.String("event_id", ev.ID))
		return nil
	}

	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("circuit breaker is open",
			zap.Error(err),
			zap.String("event_id", ev.ID),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	if err := retry.Do(ctx, h.retryPolicy, func() error {
		return h.sender.Send(ctx, ev.Notifications)
	}); err != nil {
		h.logger.Error("send failed after retries",
			zap.String("event_id", ev.ID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	h.breaker.Success()
	h.delivered.Add(ev.ID, struct{}{})
	h.logger.Info("batch event delivered",
		zap.String("event_id", ev.ID),
		zap.Int("notifications", len(ev.Notifications)),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
	)
	return nil
}
