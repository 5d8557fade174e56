package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	evaluationerrors "laureate/contexts/award-program/evaluation-ledger/domain/errors"
	evaluationhttp "laureate/contexts/award-program/evaluation-ledger/transport/http"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func writeEvaluationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, evaluationhttp.ErrorResponse{Code: code, Message: message})
}

func writeEvaluationDomainError(w http.ResponseWriter, err error) {
	var validation *evaluationerrors.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, evaluationhttp.ErrorResponse{
			Code:    "validation_failed",
			Message: validation.Error(),
			Fields:  toEvaluationFieldErrors(validation.Fields),
		})
	case errors.Is(err, evaluationerrors.ErrValidation):
		writeEvaluationError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, policyerrors.ErrUnauthenticated):
		writeEvaluationError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, policyerrors.ErrForbidden):
		writeEvaluationError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, evaluationerrors.ErrEvaluationNotFound):
		writeEvaluationError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, evaluationerrors.ErrAlreadyEvaluated):
		writeEvaluationError(w, http.StatusConflict, "already_evaluated", err.Error())
	case errors.Is(err, evaluationerrors.ErrConflict):
		writeEvaluationError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeEvaluationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func toEvaluationFieldErrors(fields []evaluationerrors.FieldError) []evaluationhttp.FieldError {
	out := make([]evaluationhttp.FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, evaluationhttp.FieldError{Field: field.Field, Message: field.Message})
	}
	return out
}

func (s *Server) handleCreateEvaluation(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	var req evaluationhttp.CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEvaluationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.evaluations.Handler.CreateEvaluationHandler(r.Context(), principalID, principalRole, req)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	mineOnly := r.URL.Query().Get("mine") == "true"
	resp, err := s.evaluations.Handler.ListEvaluationsHandler(r.Context(), principalID, principalRole, mineOnly)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePendingQueue(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	resp, err := s.evaluations.Handler.PendingQueueHandler(r.Context(), principalID, principalRole)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	evaluationID := strings.TrimSpace(r.PathValue("evaluation_id"))
	if evaluationID == "" {
		writeEvaluationError(w, http.StatusBadRequest, "invalid_request", "evaluation_id is required")
		return
	}

	resp, err := s.evaluations.Handler.GetEvaluationHandler(r.Context(), principalID, principalRole, evaluationID)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateEvaluation(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	evaluationID := strings.TrimSpace(r.PathValue("evaluation_id"))
	if evaluationID == "" {
		writeEvaluationError(w, http.StatusBadRequest, "invalid_request", "evaluation_id is required")
		return
	}

	var req evaluationhttp.UpdateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEvaluationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.evaluations.Handler.UpdateEvaluationHandler(r.Context(), principalID, principalRole, evaluationID, req)
	if err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	evaluationID := strings.TrimSpace(r.PathValue("evaluation_id"))
	if evaluationID == "" {
		writeEvaluationError(w, http.StatusBadRequest, "invalid_request", "evaluation_id is required")
		return
	}

	if err := s.evaluations.Handler.DeleteEvaluationHandler(r.Context(), principalID, principalRole, evaluationID); err != nil {
		writeEvaluationDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
