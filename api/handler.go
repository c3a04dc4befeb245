package api

import (
	"encoding/json"
	"net/http"

	"printcost/internal/errors"
)

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.Input("invalid JSON payload: "+err.Error()))
		return
	}

	results, err := s.engine.EstimateRaw(&req.Specification)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, EstimateResponse{
		RequestID: reqID(r),
		Results:   results,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: Version})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{Version: Version})
}
