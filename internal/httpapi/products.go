package httpapi

import (
	"net/http"

	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/i18n"
	"github.com/TemirB/bakeflow-admin/internal/observability"
)

type statusRequest struct {
	Status domain.ProductStatus `json:"status"`
}

type languageBody struct {
	Lang string `json:"lang"`
}

type successBody struct {
	Success bool `json:"success"`
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Category: q.Get("category"),
		Status:   domain.ProductStatus(q.Get("status")),
		Search:   q.Get("search"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status filter", nil)
		return
	}

	listing, st, err := s.deps.Products.ListWithStats(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Failed to load products", err)
		return
	}

	h := w.Header()
	observability.AddTimings(h,
		observability.Timing{Name: "cache", DurMs: st.CacheMs},
		observability.Timing{Name: "backend", DurMs: st.BackendMs},
		observability.Timing{Name: "source", Desc: string(st.Source)},
	)
	h.Set("X-Source", string(st.Source))
	observability.SetMillis(h, "X-Cache-Time", st.CacheMs)
	observability.SetMillis(h, "X-Backend-Time", st.BackendMs)

	writeJSON(w, listing)
}

func (s *Server) archiveProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "product id required", nil)
		return
	}
	if err := s.deps.Products.Archive(r.Context(), id); err != nil {
		writeError(w, statusFor(err), "Failed to archive product", err)
		return
	}
	writeJSON(w, successBody{Success: true})
}

func (s *Server) setProductStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "product id required", nil)
		return
	}
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json", err)
		return
	}
	if err := s.deps.Products.SetStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, statusFor(err), "Failed to update status", err)
		return
	}
	writeJSON(w, successBody{Success: true})
}

func (s *Server) lang() string {
	if s.deps.Language == nil {
		return i18n.DefaultLang
	}
	return s.deps.Language.Lang()
}

func (s *Server) getLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, languageBody{Lang: s.lang()})
}

func (s *Server) putLanguage(w http.ResponseWriter, r *http.Request) {
	var body languageBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "bad json", err)
		return
	}
	lang, err := s.deps.Language.Set(r.Context(), body.Lang)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unsupported language", err)
		return
	}
	writeJSON(w, languageBody{Lang: lang})
}

// getTranslations returns the message table for ?lang= or the current language.
func (s *Server) getTranslations(w http.ResponseWriter, r *http.Request) {
	lang := s.lang()
	if raw := r.URL.Query().Get("lang"); raw != "" {
		l, ok := i18n.Normalize(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unsupported language", nil)
			return
		}
		lang = l
	}
	writeJSON(w, map[string]any{
		"lang":     lang,
		"messages": s.deps.Translator.Messages(lang),
	})
}
