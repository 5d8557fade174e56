package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	awardcatalog "laureate/contexts/award-program/award-catalog"
	evaluationledger "laureate/contexts/award-program/evaluation-ledger"
	projectlifecycle "laureate/contexts/award-program/project-lifecycle"
	rankingengine "laureate/contexts/award-program/ranking-engine"
	accountservice "laureate/contexts/identity-access/account-service"
	policyservice "laureate/contexts/identity-access/policy-service"
)

func newTestServer() *Server {
	policyModule := policyservice.NewModule(policyservice.Dependencies{Logger: slog.Default()})
	guard := policyModule.Guard
	return New(
		awardcatalog.NewInMemoryModule(nil, guard, slog.Default()),
		projectlifecycle.NewInMemoryModule(nil, guard, slog.Default()),
		evaluationledger.NewInMemoryModule(nil, guard, slog.Default()),
		rankingengine.NewInMemoryModule(guard, 0, slog.Default()),
		accountservice.NewInMemoryModule(nil, guard, slog.Default()),
		policyModule,
		slog.Default(),
		":0",
	)
}

const awardBody = `{"name":"Physics Prize","description":"Annual physics award","year":2026,"stages":[{"label":"Submission","start_date":"2026-01-01","end_date":"2026-03-01"}]}`

func TestAwardCreateRequiresPrincipal(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/awards", bytes.NewReader([]byte(awardBody)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAwardCreateRejectsNonAdmin(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/awards", bytes.NewReader([]byte(awardBody)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "author-1")
	req.Header.Set("X-User-Role", "author")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAwardCreateRejectsInvalidJSON(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/awards", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "admin-1")
	req.Header.Set("X-User-Role", "admin")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAwardCreateAndFetchRoundTrip(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/awards", bytes.NewReader([]byte(awardBody)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "admin-1")
	req.Header.Set("X-User-Role", "admin")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	awardID, ok := created["award_id"].(string)
	if !ok || awardID == "" {
		t.Fatalf("expected award_id in response, got %#v", created)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/awards/"+awardID, nil)
	getReq.Header.Set("X-User-Id", "author-1")
	getReq.Header.Set("X-User-Role", "author")

	getRR := httptest.NewRecorder()
	server.mux.ServeHTTP(getRR, getReq)

	if getRR.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", getRR.Code, getRR.Body.String())
	}
}

func TestAwardGetUnknownReturnsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/awards/award-missing", nil)
	req.Header.Set("X-User-Id", "author-1")
	req.Header.Set("X-User-Role", "author")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
