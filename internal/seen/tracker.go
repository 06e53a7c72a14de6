// Package seen remembers which order ids were already observed so that an
// order is announced at most once, across restarts.
package seen

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/storage"
)

// StorageKey holds a JSON array of order ids.
const StorageKey = "bakeflow_seen_orders"

const writeTimeout = 5 * time.Second

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Tracker struct {
	mu  sync.RWMutex
	ids map[int64]struct{}

	store  Store
	logger *zap.Logger

	dirty     chan struct{}
	flushReq  chan chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewTracker(store Store, logger *zap.Logger) *Tracker {
	t := &Tracker{
		ids:      make(map[int64]struct{}),
		store:    store,
		logger:   logger,
		dirty:    make(chan struct{}, 1),
		flushReq: make(chan chan struct{}),
		done:     make(chan struct{}),
	}
	t.wg.Add(1)
	go t.writer()
	return t
}

// Load merges the persisted set into memory. Missing, unreadable or corrupt
// data leaves the set as it is.
func (t *Tracker) Load(ctx context.Context) {
	raw, err := t.store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			t.logger.Warn("seen orders unavailable, starting empty", zap.Error(err))
		}
		return
	}

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		t.logger.Warn("seen orders corrupt, starting empty", zap.Error(err))
		return
	}

	t.mu.Lock()
	for _, id := range ids {
		t.ids[id] = struct{}{}
	}
	n := len(t.ids)
	t.mu.Unlock()

	t.logger.Info("seen orders loaded", zap.Int("count", n))
}

func (t *Tracker) Has(id int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.ids[id]
	return ok
}

// MarkSeen adds ids and schedules a write when the set grew. It never blocks on storage.
func (t *Tracker) MarkSeen(ids ...int64) {
	grew := false
	t.mu.Lock()
	for _, id := range ids {
		if _, ok := t.ids[id]; !ok {
			t.ids[id] = struct{}{}
			grew = true
		}
	}
	t.mu.Unlock()

	if grew {
		select {
		case t.dirty <- struct{}{}:
		default:
		}
	}
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ids)
}

// IDs returns a sorted copy of the set.
func (t *Tracker) IDs() []int64 {
	t.mu.RLock()
	out := make([]int64, 0, len(t.ids))
	for id := range t.ids {
		out = append(out, id)
	}
	t.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Flush blocks until every write scheduled so far has been attempted.
func (t *Tracker) Flush() {
	ack := make(chan struct{})
	select {
	case t.flushReq <- ack:
		<-ack
	case <-t.done:
	}
}

// Close writes any pending change and stops the writer.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.wg.Wait()
	})
}

func (t *Tracker) writer() {
	defer t.wg.Done()
	for {
		select {
		case <-t.dirty:
			t.persist()
		case ack := <-t.flushReq:
			t.drain()
			close(ack)
		case <-t.done:
			t.drain()
			return
		}
	}
}

func (t *Tracker) drain() {
	select {
	case <-t.dirty:
		t.persist()
	default:
	}
}

func (t *Tracker) persist() {
	raw, err := json.Marshal(t.IDs())
	if err != nil {
		t.logger.Warn("seen orders encode failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := t.store.Set(ctx, StorageKey, string(raw)); err != nil {
		t.logger.Warn("seen orders not persisted", zap.Error(err))
	}
}
