package queries

import (
	"context"
	"log/slog"
	"strings"

	"laureate/contexts/award-program/evaluation-ledger/domain/entities"
	"laureate/contexts/award-program/evaluation-ledger/ports"
)

// ReviewDeskUseCase serves evaluation reads and the evaluator work queue.
type ReviewDeskUseCase struct {
	Evaluations ports.EvaluationRepository
	Projects    ports.ProjectDirectory
	Policy      ports.PolicyGuard
	Logger      *slog.Logger
}

type GetEvaluationQuery struct {
	PrincipalID   string
	PrincipalRole string
	EvaluationID  string
}

func (uc ReviewDeskUseCase) GetEvaluation(ctx context.Context, query GetEvaluationQuery) (entities.Evaluation, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "evaluation.read", "evaluation", "", ""); err != nil {
		return entities.Evaluation{}, err
	}
	return uc.Evaluations.GetEvaluation(ctx, strings.TrimSpace(query.EvaluationID))
}

type ListEvaluationsQuery struct {
	PrincipalID   string
	PrincipalRole string
}

func (uc ReviewDeskUseCase) ListEvaluations(ctx context.Context, query ListEvaluationsQuery) ([]entities.Evaluation, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "evaluation.read", "evaluation", "", ""); err != nil {
		return nil, err
	}
	return uc.Evaluations.ListEvaluations(ctx)
}

type ListEvaluatedByQuery struct {
	PrincipalID   string
	PrincipalRole string
}

// ListEvaluatedBy returns the evaluations the caller has authored.
func (uc ReviewDeskUseCase) ListEvaluatedBy(ctx context.Context, query ListEvaluatedByQuery) ([]entities.Evaluation, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "evaluation.read", "evaluation", "", ""); err != nil {
		return nil, err
	}
	return uc.Evaluations.ListByEvaluator(ctx, strings.TrimSpace(query.PrincipalID))
}

type PendingQueueQuery struct {
	PrincipalID   string
	PrincipalRole string
}

// ListPendingForEvaluator returns the pending projects the caller has not yet
// evaluated, oldest submission first.
func (uc ReviewDeskUseCase) ListPendingForEvaluator(ctx context.Context, query PendingQueueQuery) ([]ports.ProjectRef, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "evaluation.read", "evaluation", "", ""); err != nil {
		return nil, err
	}
	pending, err := uc.Projects.ListPendingProjects(ctx)
	if err != nil {
		return nil, err
	}
	mine, err := uc.Evaluations.ListByEvaluator(ctx, strings.TrimSpace(query.PrincipalID))
	if err != nil {
		return nil, err
	}
	evaluated := make(map[string]bool, len(mine))
	for _, evaluation := range mine {
		evaluated[evaluation.ProjectID] = true
	}
	queue := make([]ports.ProjectRef, 0, len(pending))
	for _, project := range pending {
		if evaluated[project.ProjectID] {
			continue
		}
		queue = append(queue, project)
	}
	return queue, nil
}
