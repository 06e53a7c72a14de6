package observability

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Timing is one Server-Timing metric. Zero or negative durations are left out.
type Timing struct {
	Name  string
	DurMs float64
	Desc  string
}

func (t Timing) String() string {
	if t.DurMs <= 0 && t.Desc == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(t.Name)
	if t.DurMs > 0 {
		fmt.Fprintf(&b, ";dur=%.2f", t.DurMs)
	}
	if t.Desc != "" {
		fmt.Fprintf(&b, ";desc=%q", t.Desc)
	}
	return b.String()
}

// AddTimings appends one Server-Timing header value per non-empty metric.
func AddTimings(h http.Header, timings ...Timing) {
	for _, t := range timings {
		if v := t.String(); v != "" {
			h.Add("Server-Timing", v)
		}
	}
}

// SetMillis sets key to ms with two decimals; non-positive values leave
// the header untouched.
func SetMillis(h http.Header, key string, ms float64) {
	if ms > 0 {
		h.Set(key, fmt.Sprintf("%.2f", ms))
	}
}

// SinceMs is the elapsed time in fractional milliseconds.
func SinceMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
