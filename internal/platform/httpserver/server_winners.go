package httpserver

import (
	"errors"
	"net/http"
	"strings"

	rankingerrors "laureate/contexts/award-program/ranking-engine/domain/errors"
	rankinghttp "laureate/contexts/award-program/ranking-engine/transport/http"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func writeWinnerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rankinghttp.ErrorResponse{Code: code, Message: message})
}

func writeWinnerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, policyerrors.ErrUnauthenticated):
		writeWinnerError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, policyerrors.ErrForbidden):
		writeWinnerError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, rankingerrors.ErrAwardNotFound):
		writeWinnerError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, rankingerrors.ErrNoWinner):
		writeWinnerError(w, http.StatusNotFound, "no_winner", err.Error())
	default:
		writeWinnerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListWinners(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	resp, err := s.ranking.Handler.ListWinnersHandler(r.Context(), principalID, principalRole)
	if err != nil {
		writeWinnerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAwardWinner(w http.ResponseWriter, r *http.Request) {
	principalID, principalRole := principal(r)

	awardID := strings.TrimSpace(r.PathValue("award_id"))
	if awardID == "" {
		writeWinnerError(w, http.StatusBadRequest, "invalid_request", "award_id is required")
		return
	}

	resp, err := s.ranking.Handler.AwardWinnerHandler(r.Context(), principalID, principalRole, awardID)
	if err != nil {
		writeWinnerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
