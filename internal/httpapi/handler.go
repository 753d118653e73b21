package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jheitmann/robust-journey-planner/cache"
	"github.com/jheitmann/robust-journey-planner/planner"
	"github.com/jheitmann/robust-journey-planner/route"
	"github.com/jheitmann/robust-journey-planner/scan"
	"github.com/jheitmann/robust-journey-planner/timetable"
)

// Handler serves the §6 External Interfaces over HTTP: plan/times/
// isochrone, each a thin adapter over planner.Planner, optionally backed
// by a cache.PlanCache for repeated queries.
type Handler struct {
	planner *planner.Planner
	cache   *cache.PlanCache // nil disables caching
}

// New wires a Handler to p, with an optional result cache.
func New(p *planner.Planner, c *cache.PlanCache) *Handler {
	return &Handler{planner: p, cache: c}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func parseQuery(r *http.Request) (from, to string, departure time.Time, tolerance float64, horizon time.Duration, err error) {
	q := r.URL.Query()
	from = q.Get("from")
	if from == "" {
		from = q.Get("origin")
	}
	to = q.Get("to")

	departureStr := q.Get("departure")
	if departureStr == "" {
		err = errors.New("departure is required (RFC3339)")
		return
	}
	departure, err = time.Parse(time.RFC3339, departureStr)
	if err != nil {
		err = errors.New("departure must be RFC3339")
		return
	}

	if tolStr := q.Get("tolerance"); tolStr != "" {
		tolerance, err = strconv.ParseFloat(tolStr, 64)
		if err != nil {
			err = errors.New("tolerance must be a float")
			return
		}
	} else {
		tolerance = 0.9
	}

	horizon = scan.DefaultHorizon
	if hStr := q.Get("horizon_minutes"); hStr != "" {
		var minutes int
		minutes, err = strconv.Atoi(hStr)
		if err != nil {
			err = errors.New("horizon_minutes must be an integer")
			return
		}
		horizon = time.Duration(minutes) * time.Minute
	}
	return
}

// PlanRoute handles GET /api/v1/plan?from=A&to=B&departure=...&tolerance=0.9
func (h *Handler) PlanRoute(w http.ResponseWriter, r *http.Request) {
	from, to, departure, tolerance, horizon, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	ctx := r.Context()
	key := cache.PlanKey(from, to, departure, tolerance)
	if h.cache != nil {
		if cached, ok, cacheErr := h.cache.GetRoute(ctx, key); cacheErr == nil && ok {
			writeJSON(w, http.StatusOK, routeResponse(cached))
			return
		}
	}

	segments, err := h.planner.Plan(from, to, departure, tolerance, scan.WithHorizon(horizon))
	if err != nil {
		h.writePlannerError(w, err)
		return
	}

	if h.cache != nil {
		if setErr := h.cache.SetRoute(ctx, key, segments); setErr != nil {
			log.Printf("[httpapi] cache set route failed: %v", setErr)
		}
	}
	writeJSON(w, http.StatusOK, routeResponse(segments))
}

// Times handles GET /api/v1/times?origin=A&departure=...&tolerance=0.9
func (h *Handler) Times(w http.ResponseWriter, r *http.Request) {
	from, _, departure, tolerance, horizon, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if from == "" {
		writeError(w, http.StatusBadRequest, "origin is required")
		return
	}

	ctx := r.Context()
	key := cache.TimesKey(from, departure, tolerance)
	if h.cache != nil {
		if cached, ok, cacheErr := h.cache.GetTimes(ctx, key); cacheErr == nil && ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	times, err := h.planner.TimesFrom(from, departure, tolerance, scan.WithHorizon(horizon))
	if err != nil {
		h.writePlannerError(w, err)
		return
	}

	if h.cache != nil {
		if setErr := h.cache.SetTimes(ctx, key, times); setErr != nil {
			log.Printf("[httpapi] cache set times failed: %v", setErr)
		}
	}
	writeJSON(w, http.StatusOK, times)
}

// Isochrone handles GET /api/v1/isochrone?origin=A&departure=...
//
// Reproduces the original /iso route: one times map per canonical
// tolerance, each banded into 15-minute buckets (§ SUPPLEMENTED
// FEATURES).
func (h *Handler) Isochrone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin := q.Get("origin")
	if origin == "" {
		writeError(w, http.StatusBadRequest, "origin is required")
		return
	}
	departureStr := q.Get("departure")
	departure, err := time.Parse(time.RFC3339, departureStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "departure must be RFC3339")
		return
	}

	byTol, err := h.planner.TimesFromNamed(origin, departure, nil)
	if err != nil {
		h.writePlannerError(w, err)
		return
	}

	banded := make(map[string]map[int][]string, len(byTol))
	for tol, times := range byTol {
		banded[strconv.FormatFloat(tol, 'f', -1, 64)] = planner.BandIsochrone(times, planner.BandMinutes)
	}
	writeJSON(w, http.StatusOK, banded)
}

func (h *Handler) writePlannerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, timetable.ErrUnknownStation):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, scan.ErrInvalidTolerance), errors.Is(err, scan.ErrInvalidHorizon), errors.Is(err, scan.ErrStationOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[httpapi] planner error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func routeResponse(segments []route.Segment) map[string]interface{} {
	return map[string]interface{}{
		"segments": segments,
		"steps":    route.Steps(segments),
	}
}

// Health checks downstream dependencies and reports process status.
func Health(checks map[string]func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		services := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				status = "degraded"
				services[name] = "unhealthy: " + err.Error()
			} else {
				services[name] = "healthy"
			}
		}
		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]interface{}{"status": status, "services": services})
	}
}
