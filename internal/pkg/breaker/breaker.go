// Package breaker guards calls to a flaky collaborator (the bakery backend,
// Telegram) so a dead dependency is not hammered on every poll tick.
package breaker

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/config"
)

var ErrOpenState = errors.New("circuit breaker is open")

type State uint8

const (
	Closed State = iota
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

type Option func(*Breaker)

// WithLogger logs every state change under the given breaker name.
func WithLogger(name string, logger *zap.Logger) Option {
	return func(b *Breaker) {
		b.logger = logger.With(zap.String("breaker", name))
	}
}

type Breaker struct {
	mu       sync.Mutex
	cfg      config.Breaker
	state    State
	failures uint32
	openedAt time.Time
	probes   uint32

	logger *zap.Logger
	now    func() time.Time
}

func New(cfg config.Breaker, opts ...Option) *Breaker {
	if cfg.Threshold == 0 {
		cfg.Threshold = 1
	}
	if cfg.MaxHalfOpen == 0 {
		cfg.MaxHalfOpen = 1
	}
	b := &Breaker{cfg: cfg, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Allow reports whether a call may go through. Once the open timeout has
// passed, up to MaxHalfOpen probe calls are let through.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case Closed:
		return nil
	case Open:
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrOpenState
		}
		b.moveTo(HalfOpen)
		b.probes = 1
		return nil
	default:
		if b.probes >= b.cfg.MaxHalfOpen {
			return ErrOpenState
		}
		b.probes++
		return nil
	}
}

func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	if b.state == HalfOpen {
		b.moveTo(Closed)
	}
}

func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case Closed:
		b.failures++
		if b.failures >= b.cfg.Threshold {
			b.trip()
		}
	case HalfOpen:
		b.trip()
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) trip() {
	b.openedAt = b.now()
	b.moveTo(Open)
}

// moveTo must be called with mu held.
func (b *Breaker) moveTo(s State) {
	if b.state == s {
		return
	}
	b.logger.Info("circuit breaker state change",
		zap.Stringer("from", b.state),
		zap.Stringer("to", s),
		zap.Uint32("failures", b.failures),
	)
	b.state = s
}
