package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printcost/core/engine"
	"printcost/core/rates"
)

func testServer() *Server {
	return NewServer(engine.New(rates.Default(), rates.DefaultMachines()), ":0")
}

const validPayload = `{
  "specification": {
    "trim_width": "153",
    "trim_height": "234",
    "sections": [{
      "enabled": true,
      "pages": "256",
      "paper_gsm": "130",
      "paper_type": "Matt Art",
      "machine": "sm102",
      "colors_front": "4",
      "colors_back": "4"
    }],
    "cover": {
      "paper_gsm": "300",
      "paper_type": "Art Card",
      "machine": "sm102",
      "colors_front": "4",
      "colors_back": "0",
      "lamination": "gloss_lamination"
    },
    "binding": "perfect_binding",
    "destination": "domestic",
    "quantities": ["1000", "5000"],
    "pricing": {"mode": "margin", "percent": "20"}
  }
}`

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	s := testServer()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestEstimateEndpoint(t *testing.T) {
	rec := do(t, http.MethodPost, "/estimate", validPayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request ID header")
	}

	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Quantity != 1000 || resp.Results[1].Quantity != 5000 {
		t.Error("results must preserve the requested quantity order")
	}
	if !resp.Results[0].GrandTotal.IsPositive() {
		t.Error("expected a positive grand total")
	}
}

func TestEstimateMalformedJSON(t *testing.T) {
	rec := do(t, http.MethodPost, "/estimate", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEstimateValidationFailure(t *testing.T) {
	payload := strings.Replace(validPayload, `"pages": "256"`, `"pages": "257"`, 1)
	payload = strings.Replace(payload, `"trim_width": "153"`, `"trim_width": "0"`, 1)

	rec := do(t, http.MethodPost, "/estimate", payload)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if len(resp.Error.Violations) < 2 {
		t.Errorf("expected every violation reported, got %v", resp.Error.Violations)
	}
}

func TestHealthAndVersion(t *testing.T) {
	if rec := do(t, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", rec.Code)
	}
	if rec := do(t, http.MethodGet, "/version", ""); rec.Code != http.StatusOK {
		t.Errorf("version: expected 200, got %d", rec.Code)
	}
}

func TestEstimateRejectsGet(t *testing.T) {
	if rec := do(t, http.MethodGet, "/estimate", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
