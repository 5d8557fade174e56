package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	accounterrors "laureate/contexts/identity-access/account-service/domain/errors"
	accounthttp "laureate/contexts/identity-access/account-service/transport/http"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	var validation *accounterrors.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, accounthttp.ErrorResponse{
			Code:    "validation_failed",
			Message: validation.Error(),
			Fields:  toAccountFieldErrors(validation.Fields),
		})
	case errors.Is(err, accounterrors.ErrValidation):
		writeAccountError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeAccountError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, policyerrors.ErrUnauthenticated):
		writeAccountError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, policyerrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, accounterrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, accounterrors.ErrEmailTaken):
		writeAccountError(w, http.StatusConflict, "email_taken", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func toAccountFieldErrors(fields []accounterrors.FieldError) []accounthttp.FieldError {
	out := make([]accounthttp.FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, accounthttp.FieldError{Field: field.Field, Message: field.Message})
	}
	return out
}

func (s *Server) handleRegisterAccount(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	var req accounthttp.RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.RegisterAccountHandler(r.Context(), principalID, principalRole, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	role := strings.TrimSpace(r.URL.Query().Get("role"))
	resp, err := s.accounts.Handler.ListAccountsHandler(r.Context(), principalID, principalRole, role)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	accountID := strings.TrimSpace(r.PathValue("account_id"))
	if accountID == "" {
		writeAccountError(w, http.StatusBadRequest, "invalid_request", "account_id is required")
		return
	}

	resp, err := s.accounts.Handler.GetAccountHandler(r.Context(), principalID, principalRole, accountID)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	accountID := strings.TrimSpace(r.PathValue("account_id"))
	if accountID == "" {
		writeAccountError(w, http.StatusBadRequest, "invalid_request", "account_id is required")
		return
	}

	var req accounthttp.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.UpdateAccountHandler(r.Context(), principalID, principalRole, accountID, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	accountID := strings.TrimSpace(r.PathValue("account_id"))
	if accountID == "" {
		writeAccountError(w, http.StatusBadRequest, "invalid_request", "account_id is required")
		return
	}

	if err := s.accounts.Handler.DeleteAccountHandler(r.Context(), principalID, principalRole, accountID); err != nil {
		writeAccountDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
