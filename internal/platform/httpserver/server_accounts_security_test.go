package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

const registerBody = `{"name":"Grace Almeida","role":"author","institution":"State University","email":"grace@example.org","password":"s3cret-pass","contact":{"phone":"555-0101"},"address":{"street":"1 Campus Way","city":"Springfield","state":"IL","postal_code":"62704"}}`

func TestAccountRegisterOpenToAnonymous(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader([]byte(registerBody)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	loginReq := httptest.NewRequest(http.MethodPost, "/accounts/login",
		bytes.NewReader([]byte(`{"email":"grace@example.org","password":"s3cret-pass"}`)))
	loginReq.Header.Set("Content-Type", "application/json")

	loginRR := httptest.NewRecorder()
	server.mux.ServeHTTP(loginRR, loginReq)

	if loginRR.Code != http.StatusOK {
		t.Fatalf("expected 200 on login, got %d body=%s", loginRR.Code, loginRR.Body.String())
	}
}

func TestAccountRegisterRejectsAdminRole(t *testing.T) {
	server := newTestServer()
	body := `{"name":"Mallory","role":"admin","email":"mallory@example.org","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAccountLoginRejectsUnknownCredentials(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/accounts/login",
		bytes.NewReader([]byte(`{"email":"nobody@example.org","password":"whatever"}`)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAccountDeleteRequiresAdmin(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/accounts/account-2", nil)
	req.Header.Set("X-User-Id", "author-1")
	req.Header.Set("X-User-Role", "author")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}
