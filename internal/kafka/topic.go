package kafka

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/config"
)

const topicReadyTimeout = 10 * time.Second

type TopicSpec struct {
	Partitions  int
	Replication int
}

// EnsureTopic creates the notifications topic when it is missing and waits
// until its partitions show up in the metadata. Safe to call concurrently.
func EnsureTopic(ctx context.Context, cfg config.Kafka, spec TopicSpec, log *zap.Logger) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	topic := strings.TrimSpace(cfg.Topic)
	if topic == "" {
		return fmt.Errorf("empty topic")
	}
	if spec.Partitions < 1 {
		spec.Partitions = 1
	}
	if spec.Replication < 1 {
		spec.Replication = 1
	}

	dialer := &kafkago.Dialer{Timeout: topicReadyTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers[0])
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	if parts, err := conn.ReadPartitions(topic); err == nil && len(parts) > 0 {
		log.Info("kafka topic exists", zap.String("topic", topic), zap.Int("partitions", len(parts)))
		return nil
	}

	if err := createOnController(ctx, dialer, conn, topic, spec, log); err != nil {
		return err
	}
	return waitPartitions(ctx, conn, topic, spec.Partitions, log)
}

// Topic creation must go to the controller broker.
func createOnController(ctx context.Context, dialer *kafkago.Dialer, conn *kafkago.Conn, topic string, spec TopicSpec, log *zap.Logger) error {
	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("get controller: %w", err)
	}
	addr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))

	ctrl, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial controller %s: %w", addr, err)
	}
	defer ctrl.Close()

	log.Info("creating kafka topic",
		zap.String("topic", topic),
		zap.Int("partitions", spec.Partitions),
		zap.Int("replication", spec.Replication),
	)
	err = ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     spec.Partitions,
		ReplicationFactor: spec.Replication,
	})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "exists") {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func waitPartitions(ctx context.Context, conn *kafkago.Conn, topic string, want int, log *zap.Logger) error {
	deadline := time.Now().Add(topicReadyTimeout)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		parts, err := conn.ReadPartitions(topic)
		if err == nil && len(parts) >= want {
			log.Info("kafka topic is ready", zap.String("topic", topic), zap.Int("partitions", len(parts)))
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("topic %s not visible after creation", topic)
		}
		sleepWithContext(ctx, fetchBackoff)
	}
}
