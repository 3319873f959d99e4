package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"revcast/internal/config"
	"revcast/internal/forecast"
)

// Handlers serves the simulation API. It is stateless apart from injected
// collaborators, so one instance handles concurrent requests.
type Handlers struct {
	cfg     *config.AppConfig
	engine  *forecast.Engine
	metrics *Metrics

	// now supplies "today" for horizon filtering; tests override it.
	now func() time.Time
}

// NewHandlers wires the handler set to its engine, limits, and metrics.
func NewHandlers(cfg *config.AppConfig, metrics *Metrics) *Handlers {
	return &Handlers{
		cfg:     cfg,
		engine:  forecast.NewEngine(cfg.HistogramBuckets),
		metrics: metrics,
		now:     time.Now,
	}
}

// Simulate handles POST /api/v1/simulate.
func (h *Handlers) Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}

	resolved, verr := req.Validate(h.cfg)
	if verr != nil {
		writeError(w, http.StatusBadRequest, verr.Code, verr.Message)
		return
	}

	result := h.engine.Run(resolved.Opportunities, forecast.Params{
		NumSimulations:  resolved.NumSimulations,
		TimeHorizonDays: resolved.TimeHorizonDays,
		RevenueTargets:  resolved.RevenueTargets,
		Today:           h.now(),
	})

	if h.metrics != nil {
		h.metrics.SimulationsTotal.Inc()
		h.metrics.TrialsTotal.Add(float64(resolved.NumSimulations))
	}

	log.Info().
		Int("numSimulations", resolved.NumSimulations).
		Int("included", result.Metadata.OpportunitiesIncluded).
		Int("excluded", result.Metadata.OpportunitiesFiltered).
		Float64("computeTimeMs", result.Metadata.ComputeTimeMS).
		Msg("Simulation complete")

	writeJSON(w, http.StatusOK, result)
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   forecast.APIVersion,
		Timestamp: time.Now().UTC(),
	})
}

// NotFound answers unknown routes with JSON instead of the default HTML page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not_found", "no such route: "+r.URL.Path)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
