package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"laureate/contexts/award-program/evaluation-ledger/application/commands"
	"laureate/contexts/award-program/evaluation-ledger/application/queries"
	"laureate/contexts/award-program/evaluation-ledger/domain/entities"
	domainerrors "laureate/contexts/award-program/evaluation-ledger/domain/errors"
	httptransport "laureate/contexts/award-program/evaluation-ledger/transport/http"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Ledger commands.LedgerUseCase
	Desk   queries.ReviewDeskUseCase
	Logger *slog.Logger
}

func (h Handler) CreateEvaluationHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	req httptransport.CreateEvaluationRequest,
) (httptransport.EvaluationResponse, error) {
	evaluatedAt, err := parseEvaluatedAt(req.EvaluatedAt)
	if err != nil {
		return httptransport.EvaluationResponse{}, err
	}
	evaluation, err := h.Ledger.CreateEvaluation(ctx, commands.CreateEvaluationCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		ProjectID:     req.ProjectID,
		Verdict:       req.Verdict,
		Score:         req.Score,
		EvaluatedAt:   evaluatedAt,
	})
	if err != nil {
		return httptransport.EvaluationResponse{}, err
	}
	return toEvaluationResponse(evaluation), nil
}

func (h Handler) UpdateEvaluationHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	evaluationID string,
	req httptransport.UpdateEvaluationRequest,
) (httptransport.EvaluationResponse, error) {
	evaluatedAt, err := parseEvaluatedAt(req.EvaluatedAt)
	if err != nil {
		return httptransport.EvaluationResponse{}, err
	}
	evaluation, err := h.Ledger.UpdateEvaluation(ctx, commands.UpdateEvaluationCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		EvaluationID:  evaluationID,
		Verdict:       req.Verdict,
		Score:         req.Score,
		EvaluatedAt:   evaluatedAt,
	})
	if err != nil {
		return httptransport.EvaluationResponse{}, err
	}
	return toEvaluationResponse(evaluation), nil
}

func (h Handler) DeleteEvaluationHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	evaluationID string,
) error {
	return h.Ledger.DeleteEvaluation(ctx, commands.DeleteEvaluationCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		EvaluationID:  evaluationID,
	})
}

func (h Handler) GetEvaluationHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	evaluationID string,
) (httptransport.EvaluationResponse, error) {
	evaluation, err := h.Desk.GetEvaluation(ctx, queries.GetEvaluationQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		EvaluationID:  evaluationID,
	})
	if err != nil {
		return httptransport.EvaluationResponse{}, err
	}
	return toEvaluationResponse(evaluation), nil
}

func (h Handler) ListEvaluationsHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	mineOnly bool,
) (httptransport.EvaluationListResponse, error) {
	var (
		evaluations []entities.Evaluation
		err         error
	)
	if mineOnly {
		evaluations, err = h.Desk.ListEvaluatedBy(ctx, queries.ListEvaluatedByQuery{
			PrincipalID:   principalID,
			PrincipalRole: principalRole,
		})
	} else {
		evaluations, err = h.Desk.ListEvaluations(ctx, queries.ListEvaluationsQuery{
			PrincipalID:   principalID,
			PrincipalRole: principalRole,
		})
	}
	if err != nil {
		return httptransport.EvaluationListResponse{}, err
	}
	items := make([]httptransport.EvaluationResponse, 0, len(evaluations))
	for _, evaluation := range evaluations {
		items = append(items, toEvaluationResponse(evaluation))
	}
	return httptransport.EvaluationListResponse{Items: items}, nil
}

func (h Handler) PendingQueueHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
) (httptransport.QueueResponse, error) {
	queue, err := h.Desk.ListPendingForEvaluator(ctx, queries.PendingQueueQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
	})
	if err != nil {
		return httptransport.QueueResponse{}, err
	}
	items := make([]httptransport.QueueItemResponse, 0, len(queue))
	for _, project := range queue {
		items = append(items, httptransport.QueueItemResponse{
			ProjectID:   project.ProjectID,
			AwardID:     project.AwardID,
			Title:       project.Title,
			SubmittedAt: project.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.QueueResponse{Items: items}, nil
}

func parseEvaluatedAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	evaluatedAt, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &domainerrors.ValidationError{Fields: []domainerrors.FieldError{{
			Field:   "evaluated_at",
			Message: "date must use YYYY-MM-DD",
		}}}
	}
	return evaluatedAt, nil
}

func toEvaluationResponse(evaluation entities.Evaluation) httptransport.EvaluationResponse {
	return httptransport.EvaluationResponse{
		EvaluationID: evaluation.EvaluationID,
		ProjectID:    evaluation.ProjectID,
		EvaluatorID:  evaluation.EvaluatorID,
		Verdict:      evaluation.Verdict,
		Score:        evaluation.Score,
		EvaluatedAt:  evaluation.EvaluatedAt.UTC().Format(dateLayout),
	}
}
