package sitemap

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/hailey21/notion-blog/internal/sitedata"
)

// CacheControl lets shared caches keep the document for 8 hours and serve it
// stale for another 8 while revalidating.
const CacheControl = "public, max-age=28800, stale-while-revalidate=28800"

// Handler serves the sitemap document built from the provider's site map.
type Handler struct {
	provider  sitedata.Provider
	generator *Generator
	log       *logrus.Entry
}

// NewHandler creates a sitemap handler.
func NewHandler(provider sitedata.Provider, generator *Generator, log *logrus.Entry) *Handler {
	return &Handler{provider: provider, generator: generator, log: log}
}

// RegisterRoutes mounts /sitemap.xml for every method; non-GET requests are
// answered with 405 by the handler itself.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.HandleFunc("/sitemap.xml", h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sm, err := h.provider.GetSiteMap(r.Context())
	if err != nil {
		if h.log != nil {
			h.log.WithError(err).Error("loading site map")
		}
		writeJSONError(w, http.StatusInternalServerError, "site map unavailable")
		return
	}

	var buf bytes.Buffer
	if err := h.generator.Write(&buf, sm); err != nil {
		if h.log != nil {
			h.log.WithError(err).Error("generating sitemap")
		}
		writeJSONError(w, http.StatusInternalServerError, "sitemap generation failed")
		return
	}

	w.Header().Set("Cache-Control", CacheControl)
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(errorResponse{Error: msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
