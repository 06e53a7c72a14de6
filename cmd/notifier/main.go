package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/application/handler"
	"github.com/TemirB/bakeflow-admin/internal/config"
	"github.com/TemirB/bakeflow-admin/internal/kafka"
	"github.com/TemirB/bakeflow-admin/internal/observability"
	"github.com/TemirB/bakeflow-admin/internal/pkg/breaker"
	"github.com/TemirB/bakeflow-admin/internal/telegram"
)

func main() {
	cfg := config.LoadNotifier()

	logger, err := observability.NewLogger(cfg.LogEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := telegram.Connect(cfg.Telegram.Token)
	if err != nil {
		logger.Fatal("Can't connect to Telegram", zap.Error(err))
	}
	sender := telegram.NewNotifier(bot, cfg.Telegram.ChatID, logger)

	if err := kafka.EnsureTopic(ctx, cfg.Kafka, kafka.TopicSpec{Partitions: 1, Replication: 1}, logger); err != nil {
		logger.Fatal("Can't ensure Kafka topic", zap.Error(err))
	}

	reader := kafka.NewReader(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Group)
	defer reader.Close()

	h := handler.NewHandler(sender, breaker.New(cfg.Breaker, breaker.WithLogger("telegram", logger)), cfg.Retry, logger)
	kafka.NewConsumer(h, reader, cfg.Kafka.Workers, logger).Start(ctx)

	logger.Info("notifier stopped")
}
