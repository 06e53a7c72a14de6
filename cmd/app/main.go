package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/application/service"
	"github.com/TemirB/bakeflow-admin/internal/backend"
	"github.com/TemirB/bakeflow-admin/internal/cache"
	"github.com/TemirB/bakeflow-admin/internal/config"
	"github.com/TemirB/bakeflow-admin/internal/httpapi"
	"github.com/TemirB/bakeflow-admin/internal/i18n"
	"github.com/TemirB/bakeflow-admin/internal/kafka"
	"github.com/TemirB/bakeflow-admin/internal/notify"
	"github.com/TemirB/bakeflow-admin/internal/observability"
	"github.com/TemirB/bakeflow-admin/internal/orders"
	"github.com/TemirB/bakeflow-admin/internal/pkg/breaker"
	"github.com/TemirB/bakeflow-admin/internal/poller"
	"github.com/TemirB/bakeflow-admin/internal/preview"
	"github.com/TemirB/bakeflow-admin/internal/seen"
	"github.com/TemirB/bakeflow-admin/internal/storage"
	"github.com/TemirB/bakeflow-admin/internal/telegram"
	"github.com/TemirB/bakeflow-admin/internal/toast"
)

const sinkTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewInmem(cfg.MetricsKeep)

	// Local storage
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Can't open local storage", zap.Error(err))
	}
	defer store.Close()

	tracker := seen.NewTracker(store, logger)
	tracker.Load(ctx)
	defer tracker.Close()

	lang := i18n.NewPreference(store, cfg.UI.Lang, logger)
	lang.Load(ctx)

	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		logger.Fatal("Can't load translations", zap.Error(err))
	}

	// Backend
	api, err := backend.New(cfg.Backend, breaker.New(cfg.Breaker, breaker.WithLogger("backend", logger)), cfg.Retry, logger)
	if err != nil {
		logger.Fatal("Can't create backend client", zap.Error(err))
	}

	// Outbound sinks
	outbound, closeSinks := sinks(ctx, cfg, logger)
	defer closeSinks()
	dispatcher := notify.NewDispatcher(cfg.Kafka.Workers, sinkTimeout, logger, outbound...)
	defer dispatcher.Close()

	// Notifications
	center := notify.NewCenter(cfg.UI.NotifyMax)
	cards := preview.NewManager(cfg.UI.PreviewTTL)
	defer cards.Close()

	orderToasts := toast.NewBoard(cfg.UI.ToastTTL)
	productToasts := toast.NewBoard(cfg.UI.ProductToastTTL)

	pol := poller.New(api, tracker, center, cards, dispatcher, cfg.Poll.Interval, logger, metrics)
	workflow := orders.NewWorkflow(api, pol, orderToasts, logger, metrics)

	// Products
	productCache := cache.New(cfg.Cache.Cap, cfg.Cache.TTL)
	productCache.Warm(ctx, api)
	products := service.NewService(productCache, api, productToasts, logger, metrics)

	server := httpapi.New(httpapi.Deps{
		Orders:        pol,
		Workflow:      workflow,
		Notifications: center,
		Preview:       cards,
		Toasts:        map[string]httpapi.Toasts{"orders": orderToasts, "products": productToasts},
		Products:      products,
		Language:      lang,
		Translator:    catalog,
		MetricsSource: metrics,
		WebDir:        cfg.UI.WebDir,
	}, logger, metrics)

	go pol.Run(ctx)

	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil {
		logger.Error("HTTP server stopped", zap.Error(err))
	}
	stop()
	logger.Info("shutting down")
}

// sinks publishes new-order batches to Kafka when brokers are configured,
// otherwise straight to Telegram when a bot is configured.
func sinks(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]notify.Sink, func()) {
	noop := func() {}
	if cfg.KafkaEnabled() {
		if err := kafka.EnsureTopic(ctx, cfg.Kafka, kafka.TopicSpec{Partitions: 1, Replication: 1}, logger); err != nil {
			logger.Warn("kafka topic not ensured, relying on auto-creation", zap.Error(err))
		}
		pub := kafka.NewPublisher(kafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), logger)
		return []notify.Sink{pub}, func() {
			if err := pub.Close(); err != nil {
				logger.Warn("kafka writer close", zap.Error(err))
			}
		}
	}
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
		bot, err := telegram.Connect(cfg.Telegram.Token)
		if err != nil {
			logger.Warn("telegram disabled", zap.Error(err))
			return nil, noop
		}
		return []notify.Sink{telegram.NewNotifier(bot, cfg.Telegram.ChatID, logger)}, noop
	}
	logger.Info("no notification sinks configured")
	return nil, noop
}
