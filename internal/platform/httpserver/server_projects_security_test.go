package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

const projectBody = `{"award_id":"award-1","title":"Quantum Annealing Survey","summary":"A survey of annealing hardware","topic_area":"physics"}`

func TestProjectSubmitRequiresPrincipal(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader([]byte(projectBody)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProjectSubmitRequiresAuthorRole(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader([]byte(projectBody)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "evaluator-1")
	req.Header.Set("X-User-Role", "evaluator")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

// Non-owners get the same answer whether or not the project exists, so a 403
// here leaks nothing about the id space. Only admins learn it is missing.
func TestProjectWithdrawHidesUnknownIDsFromNonAdmins(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/projects/project-missing", nil)
	req.Header.Set("X-User-Id", "author-1")
	req.Header.Set("X-User-Role", "author")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	adminReq := httptest.NewRequest(http.MethodDelete, "/projects/project-missing", nil)
	adminReq.Header.Set("X-User-Id", "admin-1")
	adminReq.Header.Set("X-User-Role", "admin")

	adminRR := httptest.NewRecorder()
	server.mux.ServeHTTP(adminRR, adminReq)

	if adminRR.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for admin, got %d body=%s", adminRR.Code, adminRR.Body.String())
	}
}
