// Package server exposes the simulation engine over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/iwvelando/solar-forecast/internal/engine"
	"github.com/iwvelando/solar-forecast/internal/projection"
	"github.com/iwvelando/solar-forecast/internal/tariff"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/metrics"
	"github.com/iwvelando/solar-forecast/pkg/validation"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	engine      *engine.Engine
	metrics     *metrics.Collector
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the simulation API.
// A nil engine uses the built-in tariffs; a nil collector gets a private one.
func NewHandler(logger *zap.Logger, eng *engine.Engine, collector *metrics.Collector, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if eng == nil {
		eng = engine.New(logger, tariff.Default())
	}
	if collector == nil {
		collector = metrics.NewCollector(constants.MetricsNamespace)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		engine:      eng,
		metrics:     collector,
		maxBodySize: cfg.BodySizeBytes(),
		version:     trimmedVersion,
	}

	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/simulate", h.handleSimulate).Methods(http.MethodPost)
	api.HandleFunc("/projection", h.handleProjection).Methods(http.MethodPost)
	api.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)

	router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", collector.Handler()).Methods(http.MethodGet)

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.respondErrorWithOp(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), "server.router")
	})
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.respondErrorWithOp(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "server.router")
	})

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(h.instrument(router))
}

type simulateRequest struct {
	engine.Input
	InflationRate float64 `json:"inflationRate"`
	Years         int     `json:"years"`
}

type simulateResponse struct {
	QuoteID    string            `json:"quoteId"`
	Result     engine.Result     `json:"result"`
	Projection projection.Output `json:"projection"`
	Duration   string            `json:"duration"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSimulate"
	start := time.Now()

	var req simulateRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	req.Input.Country = engine.Country(strings.ToUpper(strings.TrimSpace(string(req.Input.Country))))
	if err := validation.ValidateInput(req.Input); err != nil {
		h.metrics.RecordAPIError("validation", r.URL.Path)
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	if err := validation.ValidateProjection(req.InflationRate, req.Years); err != nil {
		h.metrics.RecordAPIError("validation", r.URL.Path)
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	result := h.engine.Calculate(req.Input)
	h.metrics.RecordSimulation(metrics.Simulation{
		Country:               string(req.Input.Country),
		Region:                string(result.Details.Region),
		SystemSizeKwc:         result.SystemSizeKwc,
		SavingsCapped:         result.Details.SavingsCapped,
		ProductionSubstituted: result.Details.ProductionSubstituted,
	})

	proj := projection.CalculateFinancialProjection(projection.Params{
		Result:        result,
		MonthlyBill:   req.Input.MonthlyBill,
		InflationRate: req.InflationRate,
		Years:         req.Years,
	})

	elapsed := time.Since(start)
	response := simulateResponse{
		QuoteID:    uuid.NewString(),
		Result:     result,
		Projection: proj,
		Duration:   elapsed.String(),
	}

	h.logger.Info("simulation computed",
		zap.String("op", op),
		zap.String("quoteId", response.QuoteID),
		zap.String("country", string(req.Input.Country)),
		zap.Float64("systemSizeKwc", result.SystemSizeKwc),
		zap.Float64("annualSavings", result.AnnualSavings),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjection"

	var params projection.Params
	if !h.decode(w, r, &params, op) {
		return
	}

	if params.MonthlyBill < 0 {
		h.metrics.RecordAPIError("validation", r.URL.Path)
		h.respondErrorWithOp(w, http.StatusBadRequest, "monthly bill must not be negative", op)
		return
	}
	if err := validation.ValidateProjection(params.InflationRate, params.Years); err != nil {
		h.metrics.RecordAPIError("validation", r.URL.Path)
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, projection.CalculateFinancialProjection(params))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version":       h.version,
		"tariffVersion": h.engine.Tariffs().Version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a size-limited JSON body into dst. It writes the error
// response itself and reports whether the caller may continue.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.metrics.RecordAPIError("body_too_large", r.URL.Path)
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		case errors.Is(err, io.EOF):
			h.metrics.RecordAPIError("decode", r.URL.Path)
			h.respondErrorWithOp(w, http.StatusBadRequest, "request body is empty", op)
		default:
			h.metrics.RecordAPIError("decode", r.URL.Path)
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		}
		return false
	}
	return true
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// unmatchedEndpoint labels requests that hit no route, keeping arbitrary
// paths out of the metric label space.
const unmatchedEndpoint = "unmatched"

// endpointLabel resolves the route template for r. A path whose route exists
// under another method keeps its own path.
func endpointLabel(router *mux.Router, r *http.Request) string {
	var match mux.RouteMatch
	if router.Match(r, &match) {
		switch {
		case match.MatchErr == nil && match.Route != nil:
			if tpl, err := match.Route.GetPathTemplate(); err == nil {
				return tpl
			}
			return r.URL.Path
		case errors.Is(match.MatchErr, mux.ErrMethodMismatch):
			return r.URL.Path
		}
	}
	return unmatchedEndpoint
}

// instrument wraps the whole router so that 404 and 405 responses are
// counted alongside matched routes.
func (h *handler) instrument(router *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoint := endpointLabel(router, r)

		timer := h.metrics.NewTimer(h.metrics.APIRequestDuration.WithLabelValues(endpoint))
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		router.ServeHTTP(rec, r)
		elapsed := timer.ObserveDuration()

		h.metrics.RecordAPIRequest(endpoint, r.Method, strconv.Itoa(rec.status))
		h.logger.Debug("request served",
			zap.String("op", "server.instrument"),
			zap.String("method", r.Method),
			zap.String("endpoint", endpoint),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed),
		)
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
