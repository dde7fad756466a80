package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/The2Innkeeper/polynomial-real-root-finding/internal/config"
	"github.com/The2Innkeeper/polynomial-real-root-finding/internal/logging"
	"github.com/The2Innkeeper/polynomial-real-root-finding/internal/polynomial"
)

// Logger is the logging surface the server needs, kept as an interface
// so tests can substitute their own implementation.
type Logger interface {
	Debug(msg string, fields ...map[string]interface{})
	Info(msg string, fields ...map[string]interface{})
	Warn(msg string, fields ...map[string]interface{})
	Error(msg string, fields ...map[string]interface{})
	WithFields(fields map[string]interface{}) *logging.Logger
}

// Server exposes the root-finding pipeline over REST and JSON-RPC.
// Solving is synchronous: isolation plus refinement is a pure
// computation that completes well inside a request deadline.
type Server struct {
	cfg    *config.Config
	logger Logger
}

// NewServer creates a server with the given config and logger.
func NewServer(cfg *config.Config, logger Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/roots", s.handleSolve("all", polynomial.FindAllRealRoots))
		r.Post("/roots/positive", s.handleSolve("positive", polynomial.FindStrictlyPositiveRoots))
		r.Post("/roots/negative", s.handleSolve("negative", polynomial.FindStrictlyNegativeRoots))
	})

	r.Post("/rpc", s.handleJSONRPC)
}

type solveRequest struct {
	// Coefficients in ascending degree order: index i is the
	// coefficient of x^i.
	Coefficients []float64 `json:"coefficients"`
	Precision    float64   `json:"precision,omitempty"`
}

type solveResponse struct {
	Roots     []float64 `json:"roots"`
	Count     int       `json:"count"`
	Precision float64   `json:"precision"`
}

type solveFunc func(polynomial.Polynomial, float64) ([]float64, error)

func (s *Server) handleSolve(operation string, solve solveFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			solveRequests.WithLabelValues(operation, "bad_request").Inc()
			s.respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		resp, status, err := s.solve(operation, req, solve)
		if err != nil {
			s.respondError(w, status, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// solve validates the request and runs the pipeline, recording metrics
// for both outcomes. The returned status is only meaningful when err is
// non-nil.
func (s *Server) solve(operation string, req solveRequest, fn solveFunc) (*solveResponse, int, error) {
	if err := s.validate(req); err != nil {
		solveRequests.WithLabelValues(operation, "bad_request").Inc()
		return nil, http.StatusBadRequest, err
	}

	precision := req.Precision
	if precision <= 0 {
		precision = s.cfg.Solver.DefaultPrecision
	}

	start := time.Now()
	roots, err := fn(polynomial.Polynomial(req.Coefficients), precision)
	solveDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		if polynomial.IsInvalidInput(err) {
			solveRequests.WithLabelValues(operation, "bad_request").Inc()
			return nil, http.StatusBadRequest, err
		}
		solveRequests.WithLabelValues(operation, "error").Inc()
		s.logger.Error("Solve failed", map[string]interface{}{
			"operation": operation,
			"degree":    len(req.Coefficients) - 1,
			"error":     err.Error(),
		})
		return nil, http.StatusInternalServerError, err
	}

	solveRequests.WithLabelValues(operation, "ok").Inc()
	rootsFound.Add(float64(len(roots)))
	s.logger.Debug("Solve completed", map[string]interface{}{
		"operation": operation,
		"degree":    len(req.Coefficients) - 1,
		"roots":     len(roots),
	})

	if roots == nil {
		roots = []float64{}
	}
	return &solveResponse{Roots: roots, Count: len(roots), Precision: precision}, http.StatusOK, nil
}

func (s *Server) validate(req solveRequest) error {
	if len(req.Coefficients) == 0 {
		return fmt.Errorf("coefficients are required")
	}
	if max := s.cfg.Solver.MaxDegree; len(req.Coefficients)-1 > max {
		return fmt.Errorf("degree %d exceeds the maximum of %d", len(req.Coefficients)-1, max)
	}
	for i, c := range req.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("coefficient %d is not finite", i)
		}
	}
	return nil
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": message})
}

// handleJSONRPC serves JSON-RPC 2.0 requests with the methods
// roots.find, roots.positive and roots.negative. Params carry a single
// object in the shape of solveRequest.
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var request struct {
		JSONRPC string            `json:"jsonrpc"`
		ID      interface{}       `json:"id"`
		Method  string            `json:"method"`
		Params  []json.RawMessage `json:"params,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.respondRPCError(w, nil, -32700, "Parse error")
		return
	}
	if request.JSONRPC != "2.0" {
		s.respondRPCError(w, request.ID, -32600, "Invalid Request")
		return
	}

	var fn solveFunc
	var operation string
	switch request.Method {
	case "roots.find":
		operation, fn = "all", polynomial.FindAllRealRoots
	case "roots.positive":
		operation, fn = "positive", polynomial.FindStrictlyPositiveRoots
	case "roots.negative":
		operation, fn = "negative", polynomial.FindStrictlyNegativeRoots
	default:
		s.respondRPCError(w, request.ID, -32601, "Method not found")
		return
	}

	if len(request.Params) == 0 {
		s.respondRPCError(w, request.ID, -32602, "missing solve parameters")
		return
	}
	var req solveRequest
	if err := json.Unmarshal(request.Params[0], &req); err != nil {
		s.respondRPCError(w, request.ID, -32602, "invalid solve parameters")
		return
	}

	resp, _, err := s.solve(operation, req, fn)
	if err != nil {
		s.respondRPCError(w, request.ID, -32000, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      request.ID,
		"result":  resp,
	})
}

func (s *Server) respondRPCError(w http.ResponseWriter, id interface{}, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"error":   map[string]interface{}{"code": code, "message": message},
	})
}
