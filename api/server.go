// Package api exposes the estimation engine over HTTP. The surface is
// deliberately thin: decode, validate, estimate, encode. All domain logic
// stays in the core packages.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"printcost/core/engine"
	"printcost/internal/errors"
	"printcost/internal/logging"
)

// Version is the API version reported by the version endpoint
const Version = "1.0.0"

// Server wraps the estimation engine with an HTTP interface
type Server struct {
	engine *engine.Engine
	server *http.Server
}

// NewServer creates an API server around an engine
func NewServer(eng *engine.Engine, addr string) *Server {
	s := &Server{engine: eng}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /estimate", s.handleEstimate)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /version", s.handleVersion)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      requestID(logRequests(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start begins serving. Blocks until the server stops.
func (s *Server) Start() error {
	logging.Info("starting API server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID tags every request with a UUID, echoed in the response header
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func reqID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain error types to HTTP statuses and emits the
// standard error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := string(errors.TypeInternal)
	var violations []string

	if v, ok := errors.AsValidation(err); ok {
		status = http.StatusUnprocessableEntity
		code = string(errors.TypeValidation)
		violations = v.Violations
	} else if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeInput:
			status = http.StatusBadRequest
		case errors.TypeNotFound:
			status = http.StatusNotFound
		case errors.TypeCalculation, errors.TypeRates:
			status = http.StatusUnprocessableEntity
		}
	}

	logging.Warn("request failed",
		zap.String("request_id", reqID(r)),
		zap.String("code", code),
		zap.Error(err))

	writeJSON(w, status, ErrorResponse{
		Error: ErrorBody{
			Code:       code,
			Message:    err.Error(),
			Violations: violations,
			RequestID:  reqID(r),
		},
	})
}
