package observability

type Metrics interface {
	ObservePoll(durMs float64, ok bool)
	ObserveNotifications(n int)
	ObserveStatusUpdate(durMs float64, ok bool)
	ObserveLookup(source string, cacheMs, backendMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveKafka(processMs float64, ok bool)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObservePoll(float64, bool)                {}
func (Noop) ObserveNotifications(int)                 {}
func (Noop) ObserveStatusUpdate(float64, bool)        {}
func (Noop) ObserveLookup(string, float64, float64)   {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveKafka(float64, bool)               {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
