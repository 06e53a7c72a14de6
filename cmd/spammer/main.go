package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/observability"
)

// Spammer places fake orders into the bakery at a fixed rate.
type Spammer struct {
	bakery    *Bakery
	logger    *zap.Logger
	mu        sync.Mutex
	isRunning atomic.Bool
	wg        sync.WaitGroup
	cancel    context.CancelFunc
	totalSent atomic.Int64
	startedAt time.Time
}

type SpamRequest struct {
	Rate     int    `json:"rate"`
	Duration string `json:"duration"`
}

type SpamStats struct {
	IsRunning bool    `json:"is_running"`
	TotalSent int64   `json:"total_sent"`
	Rate      float64 `json:"rate"`
}

func NewSpammer(bakery *Bakery, logger *zap.Logger) *Spammer {
	return &Spammer{bakery: bakery, logger: logger}
}

// StartSpam places rate orders per minute for duration. A running spam is left alone.
func (s *Spammer) StartSpam(rate int, duration time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning.Load() {
		return false
	}
	s.isRunning.Store(true)
	s.totalSent.Store(0)
	s.startedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	s.cancel = cancel

	s.logger.Info("Starting spam", zap.Int("rate_per_min", rate), zap.Duration("duration", duration))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.isRunning.Store(false)
		defer cancel()

		ticker := time.NewTicker(time.Minute / time.Duration(rate))
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				o := s.bakery.NewOrder()
				s.totalSent.Add(1)
				s.logger.Debug("order placed", zap.Int64("order_id", o.ID), zap.String("customer", o.CustomerName))
			case <-ctx.Done():
				s.logger.Info("Spam stopped", zap.Int64("total_sent", s.totalSent.Load()))
				return
			}
		}
	}()
	return true
}

func (s *Spammer) StopSpam() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *Spammer) Stats() SpamStats {
	st := SpamStats{IsRunning: s.isRunning.Load(), TotalSent: s.totalSent.Load()}
	s.mu.Lock()
	started := s.startedAt
	s.mu.Unlock()
	if mins := time.Since(started).Minutes(); !started.IsZero() && mins > 0 {
		st.Rate = float64(st.TotalSent) / mins
	}
	return st
}

func (s *Spammer) Routes(r chi.Router) {
	r.Post("/start", func(w http.ResponseWriter, r *http.Request) {
		var req SpamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Rate <= 0 {
			req.Rate = 6
		}
		duration, err := time.ParseDuration(req.Duration)
		if err != nil || duration <= 0 {
			http.Error(w, "Invalid duration format", http.StatusBadRequest)
			return
		}

		status := "started"
		if !s.StartSpam(req.Rate, duration) {
			status = "already running"
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   status,
			"rate":     req.Rate,
			"duration": duration.String(),
		})
	})

	r.Post("/stop", func(w http.ResponseWriter, r *http.Request) {
		s.StopSpam()
		writeJSON(w, http.StatusOK, map[string]any{
			"status":     "stopped",
			"total_sent": s.totalSent.Load(),
		})
	})

	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Stats())
	})

	// one-off order, handy for poking the console by hand
	r.Post("/order", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, s.bakery.NewOrder())
	})
}

func main() {
	logger, err := observability.NewLogger(os.Getenv("LOG_ENV"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	bakery := NewBakery()
	spammer := NewSpammer(bakery, logger)
	defer spammer.StopSpam()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	bakery.Routes(r)
	spammer.Routes(r)

	port := ":8080"
	if envPort := os.Getenv("SPAMMER_PORT"); envPort != "" {
		port = ":" + envPort
	}

	srv := &http.Server{Addr: port, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Fake bakery started",
		zap.String("addr", port),
		zap.Strings("endpoints", []string{"POST /start", "POST /stop", "GET /stats", "POST /order", "GET /api/admin/orders"}),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
}
