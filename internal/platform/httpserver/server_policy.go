package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
	policyhttp "laureate/contexts/identity-access/policy-service/transport/http"
)

func writePolicyError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, policyhttp.ErrorResponse{Code: code, Message: message})
}

func writePolicyDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, policyerrors.ErrUnknownAction):
		writePolicyError(w, http.StatusBadRequest, "unknown_action", err.Error())
	default:
		writePolicyError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// handlePolicyCheck answers a dry-run authorization question without
// attempting the operation. Denials come back as allowed=false, not errors.
func (s *Server) handlePolicyCheck(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	var req policyhttp.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePolicyError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.policy.Handler.CheckHandler(r.Context(), principalID, principalRole, req)
	if err != nil {
		writePolicyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
