package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/TemirB/bakeflow-admin/internal/observability"
)

// ServerTimingApp measures the whole request, appends app;dur=... to
// Server-Timing and reports it to Metrics.ObserveHTTP under the route pattern.
func ServerTimingApp(m observability.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			dur := observability.SinceMs(start)
			observability.AddTimings(w.Header(), observability.Timing{Name: "app", DurMs: dur})
			m.ObserveHTTP(r.Method, routePattern(r), ww.Status(), dur)
		})
	}
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
