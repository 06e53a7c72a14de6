package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/dashboard"
	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/orders"
)

type ordersPage struct {
	Filter    string         `json:"filter"`
	Orders    []orders.Card  `json:"orders"`
	Counts    map[string]int `json:"counts"`
	Error     string         `json:"error,omitempty"`
	Loading   bool           `json:"loading"`
	FetchedAt time.Time      `json:"fetched_at,omitempty"`
}

type advanceResult struct {
	ID     int64              `json:"id"`
	Status domain.OrderStatus `json:"status"`
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	snap := s.deps.Orders.Snapshot()
	o := dashboard.Build(snap.Orders)
	o.Error = snap.Error
	o.Loading = snap.Loading
	o.FetchedAt = snap.FetchedAt
	writeJSON(w, o)
}

func (s *Server) getSalesChart(w http.ResponseWriter, r *http.Request) {
	lang := s.lang()
	title := "Sales Overview"
	if s.deps.Translator != nil {
		title = s.deps.Translator.T(lang, "salesOverview")
	}

	html, err := dashboard.SalesChart(
		dashboard.DailySales(s.deps.Orders.Snapshot().Orders),
		dashboard.ChartOptions{Title: title},
	)
	if err != nil {
		s.logger.Error("sales chart", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "chart unavailable", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")
	if filter == "" {
		filter = orders.FilterAll
	}
	if !orders.ValidFilter(filter) {
		writeError(w, http.StatusBadRequest, "unknown status filter", nil)
		return
	}

	writeJSON(w, s.ordersPage(filter))
}

func (s *Server) ordersPage(filter string) ordersPage {
	snap := s.deps.Orders.Snapshot()
	return ordersPage{
		Filter:    filter,
		Orders:    orders.Board(snap.Orders, filter, s.deps.Workflow.Updating),
		Counts:    orders.Counts(snap.Orders),
		Error:     snap.Error,
		Loading:   snap.Loading,
		FetchedAt: snap.FetchedAt,
	}
}

// refreshOrders runs an out-of-band fetch and answers with the new board.
func (s *Server) refreshOrders(w http.ResponseWriter, r *http.Request) {
	s.deps.Orders.Refresh(r.Context())
	writeJSON(w, s.ordersPage(orders.FilterAll))
}

func (s *Server) advanceOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "order id required", nil)
		return
	}

	status, err := s.deps.Workflow.Advance(r.Context(), id)
	if err != nil {
		s.logger.Debug("advance rejected", zap.Int64("order_id", id), zap.Error(err))
		writeError(w, statusFor(err), "status update failed", err)
		return
	}
	writeJSON(w, advanceResult{ID: id, Status: status})
}
