package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

//go:generate mockgen -source internal/kafka/publisher.go -destination=internal/kafka/publisher_mock_test.go -package=kafka

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher puts every new-order batch on the notifications topic.
type Publisher struct {
	writer Writer
	logger *zap.Logger
	now    func() time.Time
}

func NewWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		BatchSize:              100,
		AllowAutoTopicCreation: true,
	}
}

func NewPublisher(writer Writer, logger *zap.Logger) *Publisher {
	return &Publisher{writer: writer, logger: logger, now: time.Now}
}

func (p *Publisher) Publish(ctx context.Context, batch []domain.Notification) error {
	ev := NewBatchEvent(batch, p.now())
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal batch event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(ev.ID),
		Value: value,
		Time:  ev.PublishedAt,
	}); err != nil {
		return fmt.Errorf("write batch event %s: %w", ev.ID, err)
	}

	p.logger.Debug("batch event published",
		zap.String("event_id", ev.ID),
		zap.Int("notifications", len(batch)),
		zap.Int("value_bytes", len(value)),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
