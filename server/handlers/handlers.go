package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chandhuDev/JobLens/internal/interfaces"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/metrics"
	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/service"
	"github.com/chandhuDev/JobLens/server/middleware"
)

const maxListingLimit = 1000

type Handlers struct {
	Query     *service.QueryService
	Refresher interfaces.Refresher
	Metrics   *metrics.Metrics
}

func NewHandlers(q *service.QueryService, r interfaces.Refresher, m *metrics.Metrics) *Handlers {
	return &Handlers{Query: q, Refresher: r, Metrics: m}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	h.handle(mux, "GET /health", h.healthCheck)
	h.handle(mux, "GET /snapshot", h.getSnapshot)

	h.handle(mux, "GET /filter-options", h.getFilterOptions)
	h.handle(mux, "GET /kpis", h.getKPIs)
	h.handle(mux, "GET /companies", h.getCompanies)
	h.handle(mux, "GET /map-points", h.getMapPoints)
	h.handle(mux, "GET /skills", h.getSkills)
	h.handle(mux, "GET /salary_by_experience", h.getSalaryByExperience)
	h.handle(mux, "GET /raw-jobs", h.getRawJobs)

	h.handle(mux, "POST /refresh", h.postRefresh)

	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics.Handler())
	}
}

func (h *Handlers) handle(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
	route := pattern[strings.Index(pattern, " ")+1:]
	mux.Handle(pattern, middleware.Instrument(h.Metrics, route)(fn))
}

func (h *Handlers) healthCheck(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
		"ready":  false,
	}
	if snap, err := h.Query.Snapshot(); err == nil {
		body["ready"] = true
		body["snapshot"] = snap.ID
		body["records"] = len(snap.Records)
	}
	h.jsonResponse(w, http.StatusOK, body)
}

func (h *Handlers) getSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Query.Snapshot()
	if err != nil {
		h.queryError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, snap)
}

func (h *Handlers) getFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Query.FilterOptions()
	if err != nil {
		h.queryError(w, err)
		return
	}
	opts.Countries = orEmpty(opts.Countries)
	opts.Roles = orEmpty(opts.Roles)
	h.jsonResponse(w, http.StatusOK, opts)
}

func (h *Handlers) getKPIs(w http.ResponseWriter, r *http.Request) {
	c, ok := h.criteria(w, r)
	if !ok {
		return
	}
	kpis, err := h.Query.KPIs(c)
	if err != nil {
		h.queryError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, kpis)
}

func (h *Handlers) getCompanies(w http.ResponseWriter, r *http.Request) {
	c, ok := h.criteria(w, r)
	if !ok {
		return
	}
	rows, err := h.Query.TopCompanies(c)
	if err != nil {
		h.queryError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, orEmpty(rows))
}

func (h *Handlers) getMapPoints(w http.ResponseWriter, r *http.Request) {
	c, ok := h.criteria(w, r)
	if !ok {
		return
	}
	rows, err := h.Query.MapPoints(c)
	if err != nil {
		h.queryError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, orEmpty(rows))
}

func (h *Handlers) getSkills(w http.ResponseWriter, r *http.Request) {
	c, ok := h.criteria(w, r)
	if !ok {
		return
	}
	rows, err := h.Query.TopSkills(c)
	if err != nil {
		h.queryError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, orEmpty(rows))
}

func (h *Handlers) getSalaryByExperience(w http.ResponseWriter, r *http.Request) {
	c, ok := h.criteria(w, r)
	if !ok {
		return
	}
	rows, err := h.Query.SalaryByExperience(c)
	if err != nil {
		h.queryError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, orEmpty(rows))
}

func (h *Handlers) getRawJobs(w http.ResponseWriter, r *http.Request) {
	c, ok := h.criteria(w, r)
	if !ok {
		return
	}
	rows, err := h.Query.RawListing(c)
	if err != nil {
		h.queryError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, orEmpty(rows))
}

func (h *Handlers) postRefresh(w http.ResponseWriter, r *http.Request) {
	if h.Refresher == nil {
		h.errorResponse(w, http.StatusNotImplemented, "refresh not configured")
		return
	}
	err := h.Refresher.RefreshAsync(r.Context())
	if errors.Is(err, models.ErrRefreshInProgress) {
		h.errorResponse(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("refresh trigger failed")
		h.errorResponse(w, http.StatusInternalServerError, "failed to start refresh")
		return
	}
	h.jsonResponse(w, http.StatusAccepted, map[string]string{"status": "refresh started"})
}

// criteria reads the shared filter parameters. It writes a 400 and returns
// false when a numeric parameter is malformed.
func (h *Handlers) criteria(w http.ResponseWriter, r *http.Request) (models.Criteria, bool) {
	c, err := parseCriteria(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return models.Criteria{}, false
	}
	return c, true
}

func parseCriteria(r *http.Request) (models.Criteria, error) {
	q := r.URL.Query()
	c := models.Criteria{
		Role:    strings.TrimSpace(q.Get("role")),
		Keyword: strings.TrimSpace(q.Get("keywords")),
		Limit:   models.DefaultListingLimit,
	}

	for _, country := range q["countries"] {
		if country = strings.TrimSpace(country); country != "" {
			c.Countries = append(c.Countries, country)
		}
	}

	exp := q.Get("exp_max")
	if exp == "" {
		exp = q.Get("exp_min")
	}
	if exp != "" {
		v, err := strconv.ParseFloat(exp, 64)
		if err != nil {
			return c, fmt.Errorf("invalid exp_max %q", exp)
		}
		c.MaxExperience = &v
	}

	if d := q.Get("days_ago"); d != "" {
		v, err := strconv.Atoi(d)
		if err != nil {
			return c, fmt.Errorf("invalid days_ago %q", d)
		}
		c.MinRecencyDays = v
	}

	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= maxListingLimit {
			c.Limit = v
		}
	}
	return c, nil
}

func (h *Handlers) queryError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrDatasetUnavailable) {
		h.errorResponse(w, http.StatusServiceUnavailable, models.ErrDatasetUnavailable.Error())
		return
	}
	logger.Error().Err(err).Msg("query failed")
	h.errorResponse(w, http.StatusInternalServerError, "query failed")
}

func (h *Handlers) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn().Err(err).Msg("failed to write response")
	}
}

func (h *Handlers) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
