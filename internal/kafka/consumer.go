package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/kafka/consumer.go -destination=internal/kafka/consumer_mock_test.go -package=kafka

// ErrPoison marks a message that can never be handled. The consumer commits
// it instead of redelivering it forever.
var ErrPoison = errors.New("poison message")

const (
	idleBackoff   = 10 * time.Second
	fetchBackoff  = 500 * time.Millisecond
	handleBackoff = 200 * time.Millisecond
)

type MessageHandler interface {
	Handle(ctx context.Context, msg kafkago.Message) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Consumer struct {
	handler MessageHandler
	reader  Reader
	logger  *zap.Logger

	workers int
	jobs    chan job
}

type job struct {
	msg    kafkago.Message
	result chan error
}

func NewReader(brokers []string, topic, group string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: kafkago.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
}

func NewConsumer(handler MessageHandler, reader Reader, workers int, logger *zap.Logger) *Consumer {
	if workers < 1 {
		workers = 1
	}
	return &Consumer{
		handler: handler,
		reader:  reader,
		logger:  logger,
		workers: workers,
		jobs:    make(chan job, workers*2),
	}
}

// Start blocks until ctx is done. Each fetched message is handed to a worker
// and awaited before the next fetch, so offsets are committed strictly in order.
func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.logger.Info("Starting Kafka consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
		zap.Int("workers", c.workers),
	)

	for i := 0; i < c.workers; i++ {
		go c.worker(ctx, i)
	}

	for ctx.Err() == nil {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				c.logger.Debug("fetch timeout (idle), backing off", zap.Error(err))
				sleepWithContext(ctx, idleBackoff)
				continue
			}
			// rebalances and coordinator moves show up here
			c.logger.Warn("FetchMessage error, backing off", zap.Error(err))
			sleepWithContext(ctx, fetchBackoff)
			continue
		}

		if !c.deliver(ctx, msg) {
			return
		}
	}
}

// deliver hands msg to the handler until it succeeds or turns out to be
// poison, then commits it. The next message is never fetched before that,
// so a failed batch is retried instead of being skipped by a later commit.
// It returns false once ctx is done.
func (c *Consumer) deliver(ctx context.Context, msg kafkago.Message) bool {
	fields := msgFields(msg)
	for {
		ok, err := c.process(ctx, msg)
		if !ok {
			return false
		}
		if errors.Is(err, ErrPoison) {
			c.logger.Warn("dropping unprocessable message", append(fields, zap.Error(err))...)
			break
		}
		if err == nil {
			break
		}
		c.logger.Error("handler failed; retrying the same message", append(fields, zap.Error(err))...)
		sleepWithContext(ctx, handleBackoff)
		if ctx.Err() != nil {
			return false
		}
	}

	for {
		err := c.reader.CommitMessages(ctx, msg)
		if err == nil {
			c.logger.Debug("message committed", fields...)
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		c.logger.Warn("commit failed", append(fields, zap.Error(err))...)
		sleepWithContext(ctx, handleBackoff)
	}
}

// process returns ok=false when ctx ended before the handler answered.
func (c *Consumer) process(ctx context.Context, msg kafkago.Message) (bool, error) {
	done := make(chan error, 1)
	select {
	case c.jobs <- job{msg: msg, result: done}:
	case <-ctx.Done():
		return false, nil
	}
	select {
	case err := <-done:
		return true, err
	case <-ctx.Done():
		return false, nil
	}
}

func (c *Consumer) worker(ctx context.Context, id int) {
	logger := c.logger.With(zap.Int("worker", id))
	for {
		select {
		case <-ctx.Done():
			return
		case it := <-c.jobs:
			start := time.Now()
			err := c.handler.Handle(ctx, it.msg)
			fields := append(msgFields(it.msg), zap.Duration("elapsed", time.Since(start)))
			if err != nil {
				logger.Error("message handling failed", append(fields, zap.Error(err))...)
			} else {
				logger.Debug("message handled", append(fields, zap.Int("value_bytes", len(it.msg.Value)))...)
			}
			it.result <- err
		}
	}
}

func msgFields(msg kafkago.Message) []zap.Field {
	return []zap.Field{
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
