// Package httpapi exposes the analysis engine over HTTP and serves the
// bundled browser UI.
package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github-profile-analyzer/internal/profile"
	"github-profile-analyzer/web"
)

// Request bodies larger than this are rejected outright.
const maxBodyBytes = 1 << 16

// Analyzer is the engine surface the HTTP layer depends on.
type Analyzer interface {
	Analyze(ctx context.Context, query string) (*profile.Analysis, error)
	RateLimit() profile.RateLimitStatus
	CacheStats() (valid, total int)
	ClearCache() int
}

type Handler struct {
	router  chi.Router
	service Analyzer
}

func NewHandler(svc Analyzer) *Handler {
	h := &Handler{
		router:  chi.NewRouter(),
		service: svc,
	}
	h.router.Use(Logger)
	h.router.Use(CORS)
	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/health", h.Health)

	h.router.Route("/api", func(r chi.Router) {
		r.Post("/analyze", h.Analyze)
		r.Get("/rate-limit", h.RateLimit)
		r.Get("/cache/stats", h.CacheStats)
		r.Post("/cache/clear", h.ClearCache)
	})

	h.router.Handle("/*", web.Static())
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

type analyzeRequest struct {
	Query string `json:"query"`
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		Error(w, profile.WrapError(profile.KindInvalidInput, err, "request body must be JSON with a query field"))
		return
	}

	analysis, err := h.service.Analyze(r.Context(), req.Query)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, analysis)
}

func (h *Handler) RateLimit(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.service.RateLimit())
}

func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	valid, total := h.service.CacheStats()
	JSON(w, http.StatusOK, map[string]int{
		"valid_entries": valid,
		"total_entries": total,
	})
}

func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]int{
		"cleared": h.service.ClearCache(),
	})
}
