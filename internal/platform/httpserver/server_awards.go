package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	awarderrors "laureate/contexts/award-program/award-catalog/domain/errors"
	awardhttp "laureate/contexts/award-program/award-catalog/transport/http"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func writeAwardError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, awardhttp.ErrorResponse{Code: code, Message: message})
}

func writeAwardDomainError(w http.ResponseWriter, err error) {
	var validation *awarderrors.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, awardhttp.ErrorResponse{
			Code:    "validation_failed",
			Message: validation.Error(),
			Fields:  toAwardFieldErrors(validation.Fields),
		})
	case errors.Is(err, awarderrors.ErrValidation):
		writeAwardError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, policyerrors.ErrUnauthenticated):
		writeAwardError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, policyerrors.ErrForbidden):
		writeAwardError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, awarderrors.ErrAwardNotFound):
		writeAwardError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, awarderrors.ErrConflict):
		writeAwardError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeAwardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func toAwardFieldErrors(fields []awarderrors.FieldError) []awardhttp.FieldError {
	out := make([]awardhttp.FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, awardhttp.FieldError{Field: field.Field, Message: field.Message})
	}
	return out
}

func (s *Server) handleCreateAward(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	var req awardhttp.CreateAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAwardError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.awards.Handler.CreateAwardHandler(r.Context(), principalID, principalRole, req)
	if err != nil {
		writeAwardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListAwards(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	resp, err := s.awards.Handler.ListAwardsHandler(r.Context(), principalID, principalRole)
	if err != nil {
		writeAwardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAward(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	awardID := strings.TrimSpace(r.PathValue("award_id"))
	if awardID == "" {
		writeAwardError(w, http.StatusBadRequest, "invalid_request", "award_id is required")
		return
	}

	resp, err := s.awards.Handler.GetAwardHandler(r.Context(), principalID, principalRole, awardID)
	if err != nil {
		writeAwardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateAward(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	awardID := strings.TrimSpace(r.PathValue("award_id"))
	if awardID == "" {
		writeAwardError(w, http.StatusBadRequest, "invalid_request", "award_id is required")
		return
	}

	var req awardhttp.UpdateAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAwardError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.awards.Handler.UpdateAwardHandler(r.Context(), principalID, principalRole, awardID, req)
	if err != nil {
		writeAwardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAward(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	awardID := strings.TrimSpace(r.PathValue("award_id"))
	if awardID == "" {
		writeAwardError(w, http.StatusBadRequest, "invalid_request", "award_id is required")
		return
	}

	resp, err := s.awards.Handler.DeleteAwardHandler(r.Context(), principalID, principalRole, awardID)
	if err != nil {
		writeAwardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
