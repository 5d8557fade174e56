package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const evaluationBody = `{"project_id":"project-1","verdict":"solid contribution","score":8.5}`

func TestEvaluationCreateRequiresEvaluatorRole(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewReader([]byte(evaluationBody)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "author-1")
	req.Header.Set("X-User-Role", "author")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestEvaluationCreateRejectsMalformedDate(t *testing.T) {
	server := newTestServer()
	body := `{"project_id":"project-1","verdict":"solid contribution","score":8.5,"evaluated_at":"15/01/2026"}`
	req := httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "evaluator-1")
	req.Header.Set("X-User-Role", "evaluator")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	fields, ok := payload["fields"].([]any)
	if !ok || len(fields) == 0 {
		t.Fatalf("expected field errors, got %#v", payload)
	}
}

func TestEvaluationDeleteRequiresAdmin(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/evaluations/evaluation-1", nil)
	req.Header.Set("X-User-Id", "evaluator-1")
	req.Header.Set("X-User-Role", "evaluator")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	adminReq := httptest.NewRequest(http.MethodDelete, "/evaluations/evaluation-1", nil)
	adminReq.Header.Set("X-User-Id", "admin-1")
	adminReq.Header.Set("X-User-Role", "admin")

	adminRR := httptest.NewRecorder()
	server.mux.ServeHTTP(adminRR, adminReq)

	if adminRR.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for admin on unknown id, got %d body=%s", adminRR.Code, adminRR.Body.String())
	}
}

func TestEvaluationQueueRequiresPrincipal(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/evaluations/queue", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}
