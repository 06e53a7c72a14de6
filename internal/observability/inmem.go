package observability

import "sync"

type observe struct {
	Kind      string  `json:"kind"`
	Source    string  `json:"source,omitempty"`
	Method    string  `json:"method,omitempty"`
	Route     string  `json:"route,omitempty"`
	Status    int     `json:"status,omitempty"`
	Count     int     `json:"count,omitempty"`
	DurMs     float64 `json:"dur_ms,omitempty"`
	CacheMs   float64 `json:"cache_ms,omitempty"`
	BackendMs float64 `json:"backend_ms,omitempty"`
	OK        bool    `json:"ok"`
}

type Totals struct {
	Polls         int `json:"polls"`
	PollFailures  int `json:"poll_failures"`
	Notifications int `json:"notifications"`
	StatusUpdates int `json:"status_updates"`
	CacheHits     int `json:"cache_hits"`
	CacheMiss     int `json:"cache_miss"`
}

type Snapshot struct {
	Totals Totals    `json:"totals"`
	Last   []observe `json:"last"`
}

type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals Totals
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObservePoll(durMs float64, ok bool) {
	m.mu.Lock()
	m.totals.Polls++
	if !ok {
		m.totals.PollFailures++
	}
	m.mu.Unlock()
	m.push(&observe{Kind: "poll", DurMs: durMs, OK: ok})
}

func (m *Inmem) ObserveNotifications(n int) {
	m.mu.Lock()
	m.totals.Notifications += n
	m.mu.Unlock()
	m.push(&observe{Kind: "notifications", Count: n, OK: true})
}

func (m *Inmem) ObserveStatusUpdate(durMs float64, ok bool) {
	m.mu.Lock()
	m.totals.StatusUpdates++
	m.mu.Unlock()
	m.push(&observe{Kind: "status_update", DurMs: durMs, OK: ok})
}

func (m *Inmem) ObserveLookup(source string, cacheMs, backendMs float64) {
	m.push(&observe{Kind: "lookup", Source: source, CacheMs: cacheMs, BackendMs: backendMs, OK: true})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Route: route, Status: status, DurMs: durMs, OK: status < 500})
}

func (m *Inmem) ObserveKafka(processMs float64, ok bool) {
	m.push(&observe{Kind: "kafka", DurMs: processMs, OK: ok})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.CacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.CacheMiss++
	m.mu.Unlock()
}

// Snapshot copies the recorder state for the debug endpoint.
func (m *Inmem) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := Snapshot{Totals: m.totals, Last: make([]observe, 0, len(m.last))}
	for _, o := range m.last {
		out.Last = append(out.Last, *o)
	}
	return out
}
