package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWinnersRequireAuthentication(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/winners", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAwardWinnerUnknownAwardReturnsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/awards/award-missing/winner", nil)
	req.Header.Set("X-User-Id", "author-1")
	req.Header.Set("X-User-Role", "author")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPolicyCheckReportsDenialWithoutError(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/policy/check",
		bytes.NewReader([]byte(`{"action":"award.create"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "author-1")
	req.Header.Set("X-User-Role", "author")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if allowed, ok := payload["allowed"].(bool); !ok || allowed {
		t.Fatalf("expected allowed=false, got %#v", payload)
	}
}

func TestPolicyCheckRejectsUnknownAction(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/policy/check",
		bytes.NewReader([]byte(`{"action":"award.explode"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "admin-1")
	req.Header.Set("X-User-Role", "admin")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
