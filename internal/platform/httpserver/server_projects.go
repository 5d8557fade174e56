package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	projecterrors "laureate/contexts/award-program/project-lifecycle/domain/errors"
	projecthttp "laureate/contexts/award-program/project-lifecycle/transport/http"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func writeProjectError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, projecthttp.ErrorResponse{Code: code, Message: message})
}

func writeProjectDomainError(w http.ResponseWriter, err error) {
	var validation *projecterrors.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, projecthttp.ErrorResponse{
			Code:    "validation_failed",
			Message: validation.Error(),
			Fields:  toProjectFieldErrors(validation.Fields),
		})
	case errors.Is(err, projecterrors.ErrValidation):
		writeProjectError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, policyerrors.ErrUnauthenticated):
		writeProjectError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, policyerrors.ErrForbidden):
		writeProjectError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, projecterrors.ErrProjectNotFound):
		writeProjectError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, projecterrors.ErrProjectLocked):
		writeProjectError(w, http.StatusConflict, "project_locked", err.Error())
	case errors.Is(err, projecterrors.ErrConflict):
		writeProjectError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeProjectError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func toProjectFieldErrors(fields []projecterrors.FieldError) []projecthttp.FieldError {
	out := make([]projecthttp.FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, projecthttp.FieldError{Field: field.Field, Message: field.Message})
	}
	return out
}

func (s *Server) handleSubmitProject(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	var req projecthttp.SubmitProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProjectError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.projects.Handler.SubmitProjectHandler(r.Context(), principalID, principalRole, req)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// handleListProjects serves both the award board and the author filter:
// ?award_id= narrows to one award, ?author_id= narrows to one author.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	authorID := strings.TrimSpace(r.URL.Query().Get("author_id"))
	if authorID != "" {
		resp, err := s.projects.Handler.ListProjectsByAuthorHandler(r.Context(), principalID, principalRole, authorID)
		if err != nil {
			writeProjectDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	awardID := strings.TrimSpace(r.URL.Query().Get("award_id"))
	resp, err := s.projects.Handler.ListProjectsHandler(r.Context(), principalID, principalRole, awardID)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	projectID := strings.TrimSpace(r.PathValue("project_id"))
	if projectID == "" {
		writeProjectError(w, http.StatusBadRequest, "invalid_request", "project_id is required")
		return
	}

	resp, err := s.projects.Handler.GetProjectHandler(r.Context(), principalID, principalRole, projectID)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	projectID := strings.TrimSpace(r.PathValue("project_id"))
	if projectID == "" {
		writeProjectError(w, http.StatusBadRequest, "invalid_request", "project_id is required")
		return
	}

	var req projecthttp.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProjectError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.projects.Handler.UpdateProjectHandler(r.Context(), principalID, principalRole, projectID, req)
	if err != nil {
		writeProjectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWithdrawProject(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	projectID := strings.TrimSpace(r.PathValue("project_id"))
	if projectID == "" {
		writeProjectError(w, http.StatusBadRequest, "invalid_request", "project_id is required")
		return
	}

	if err := s.projects.Handler.WithdrawProjectHandler(r.Context(), principalID, principalRole, projectID); err != nil {
		writeProjectDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
