// Package api - Thin, deterministic API layer
// The API is ONLY responsible for input ingestion, engine invocation,
// and output serialization. It NEVER performs sizing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cablesize/core/cache"
	"cablesize/core/sizing"
	"cablesize/core/tables"
	"cablesize/core/types"
	"cablesize/internal/config"
	"cablesize/internal/errors"
	"cablesize/internal/logging"
)

// Server is the API server
type Server struct {
	selector *sizing.Selector
	tables   *tables.Tables
	results  *cache.ResultCache
	mux      *http.ServeMux
	version  string
	log      *zap.Logger
}

// NewServer creates an API server over the process-wide tables
func NewServer(version string) *Server {
	return NewServerWithTables(version, tables.Default())
}

// NewServerWithTables creates an API server over a specific table set
func NewServerWithTables(version string, t *tables.Tables) *Server {
	cacheCfg := config.Get().Cache
	var results *cache.ResultCache
	if cacheCfg.Enabled {
		results, _ = cache.New(cacheCfg.MaxEntries)
	}
	s := &Server{
		selector: sizing.NewSelector(t),
		tables:   t,
		results:  results,
		mux:      http.NewServeMux(),
		version:  version,
		log:      logging.Named("api"),
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /size", s.handleSize)
	s.mux.HandleFunc("POST /batch", s.handleBatch)
	s.mux.HandleFunc("GET /standards", s.handleStandards)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleSize handles POST /size
func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	input := &req.CableSizingInput
	if err := input.Validate(); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	result, hit, err := s.compute(input)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	resp := &SizeResponse{
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Result:    result,
		Metadata: ResponseMetadata{
			InputHash:     input.Hash(),
			EngineVersion: s.version,
			CacheHit:      hit,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}

	s.log.Debug("sized circuit",
		zap.String("standard", input.Standard.String()),
		zap.String("size", result.RecommendedSize.String()),
		zap.Bool("cache_hit", hit))

	s.writeJSON(w, resp, http.StatusOK)
}

// compute runs the engine, through the memoization cache when enabled
func (s *Server) compute(input *types.CableSizingInput) (*types.CableSizingResult, bool, error) {
	if s.results == nil {
		result, err := s.selector.Select(input)
		return result, false, err
	}
	return s.results.GetOrCompute(input, func() (*types.CableSizingResult, error) {
		return s.selector.Select(input)
	})
}

// handleBatch handles POST /batch. Individual circuit failures are
// reported per entry; only malformed requests fail the whole call.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Circuits) == 0 {
		s.writeError(w, "VALIDATION_ERROR", "no circuits in request", http.StatusBadRequest)
		return
	}

	resp := &BatchResponse{
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Results:   make([]BatchResult, 0, len(req.Circuits)),
	}
	for i := range req.Circuits {
		circuit := &req.Circuits[i]
		entry := BatchResult{Name: circuit.Name}

		if err := circuit.Input.Validate(); err != nil {
			entry.Error = err.Error()
		} else if result, err := s.selector.Select(&circuit.Input); err != nil {
			entry.Error = err.Error()
		} else {
			entry.Result = result
		}
		resp.Results = append(resp.Results, entry)
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleStandards handles GET /standards
func (s *Server) handleStandards(w http.ResponseWriter, r *http.Request) {
	resp := &StandardsResponse{}
	for _, std := range []types.Standard{types.StandardIEC, types.StandardNEC} {
		sizes, err := s.tables.Sizes(std)
		if err != nil {
			s.writeError(w, "INTERNAL_ERROR", err.Error(), http.StatusInternalServerError)
			return
		}
		resp.Standards = append(resp.Standards, StandardInfo{
			Standard:          std,
			LengthUnit:        std.NativeLengthUnit(),
			Sizes:             sizes,
			InsulationRatings: s.tables.InsulationRatings(std),
		})
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{"status": "ok"}
	if s.results != nil {
		body["cache"] = s.results.Stats()
	}
	s.writeJSON(w, body, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

// writeEngineError maps engine errors to status codes: lookup misses
// are unprocessable inputs, anything else is a server fault
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	if errors.IsLookup(err) {
		s.writeError(w, "LOOKUP_ERROR", err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.writeError(w, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, &ErrorResponse{Code: code, Message: message}, status)
}
