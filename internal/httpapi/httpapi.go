package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/application/service"
	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/notify"
	"github.com/TemirB/bakeflow-admin/internal/observability"
	"github.com/TemirB/bakeflow-admin/internal/poller"
	"github.com/TemirB/bakeflow-admin/internal/preview"
	"github.com/TemirB/bakeflow-admin/internal/toast"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type Orders interface {
	Snapshot() poller.Snapshot
	Refresh(ctx context.Context)
}

type Workflow interface {
	Updating(id int64) bool
	Advance(ctx context.Context, id int64) (domain.OrderStatus, error)
}

type Notifications interface {
	List() []domain.Notification
	UnreadCount() int
	MarkAsRead(id int64) bool
	MarkAllRead()
	ClearAll()
	Subscribe() (<-chan notify.Event, func())
}

type Preview interface {
	Current() (preview.Card, bool)
	Dismiss()
}

type Toasts interface {
	Current() (toast.Toast, bool)
	Dismiss()
}

type Products interface {
	ListWithStats(ctx context.Context, filter domain.ProductFilter) (service.Listing, service.LookupStats, error)
	Archive(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status domain.ProductStatus) error
}

type Language interface {
	Lang() string
	Set(ctx context.Context, raw string) (string, error)
}

type Translator interface {
	T(lang, key string) string
	Messages(lang string) map[string]string
}

type MetricsSource interface {
	Snapshot() observability.Snapshot
}

// Deps are the console components the API exposes. Toasts is keyed by page.
type Deps struct {
	Orders        Orders
	Workflow      Workflow
	Notifications Notifications
	Preview       Preview
	Toasts        map[string]Toasts
	Products      Products
	Language      Language
	Translator    Translator
	MetricsSource MetricsSource
	WebDir        string
}

type Server struct {
	deps    Deps
	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
	now     func() time.Time
}

func New(deps Deps, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		deps:    deps,
		router:  chi.NewRouter(),
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(ServerTimingApp(s.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.getDashboard)
		r.Get("/dashboard/chart", s.getSalesChart)

		r.Get("/orders", s.listOrders)
		r.Post("/orders/refresh", s.refreshOrders)
		r.Post("/orders/{id}/advance", s.advanceOrder)

		r.Get("/notifications", s.listNotifications)
		r.Delete("/notifications", s.clearNotifications)
		r.Post("/notifications/read-all", s.readAllNotifications)
		r.Post("/notifications/{id}/read", s.readNotification)
		r.Get("/notifications/stream", s.streamNotifications)

		r.Get("/preview", s.getPreview)
		r.Delete("/preview", s.dismissPreview)

		r.Get("/toast", s.getToast)
		r.Delete("/toast", s.dismissToast)

		r.Get("/products", s.listProducts)
		r.Delete("/products/{id}", s.archiveProduct)
		r.Patch("/products/{id}/status", s.setProductStatus)

		r.Get("/language", s.getLanguage)
		r.Put("/language", s.putLanguage)
		r.Get("/translations", s.getTranslations)
	})

	if s.deps.MetricsSource != nil {
		r.Get("/debug/metrics", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, s.deps.MetricsSource.Snapshot())
		})
	}

	s.mountStatic()
}

// mountStatic serves the operator UI when the web directory exists.
func (s *Server) mountStatic() {
	dir := s.deps.WebDir
	if dir == "" {
		return
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		s.logger.Info("no web directory, serving API only", zap.String("dir", dir))
		return
	}
	fs := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")
	s.router.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFile(w, r, index)
			return
		}
		if strings.Contains(r.URL.Path, "..") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	body := errorBody{Error: msg}
	if err != nil && err.Error() != msg {
		body.Details = err.Error()
	}
	writeJSONStatus(w, status, body)
}

// statusFor maps domain errors onto HTTP statuses.
func statusFor(err error) int {
	var be *domain.BackendError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoTransition), errors.Is(err, domain.ErrUpdateInFlight):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.As(err, &be) && be.StatusCode == http.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeBody(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		return errors.New("content type must be application/json")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("console listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Handler() http.Handler { return s.router }
