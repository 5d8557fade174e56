package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	application "laureate/contexts/award-program/evaluation-ledger/application"
	"laureate/contexts/award-program/evaluation-ledger/domain/entities"
	domainerrors "laureate/contexts/award-program/evaluation-ledger/domain/errors"
)

// UpdateEvaluationCommand revises the verdict and score of an existing
// evaluation. Project and evaluator bindings are immutable; the project
// lifecycle is not re-triggered.
type UpdateEvaluationCommand struct {
	PrincipalID   string
	PrincipalRole string
	EvaluationID  string
	Verdict       string
	Score         float64
	EvaluatedAt   time.Time
}

func (uc LedgerUseCase) UpdateEvaluation(ctx context.Context, cmd UpdateEvaluationCommand) (entities.Evaluation, error) {
	logger := application.ResolveLogger(uc.Logger)
	existing, err := uc.loadForMutation(ctx, cmd.PrincipalID, cmd.PrincipalRole, "evaluation.update", cmd.EvaluationID)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if fields := validateEvaluationFields(cmd.Verdict, cmd.Score); len(fields) > 0 {
		return entities.Evaluation{}, &domainerrors.ValidationError{Fields: fields}
	}

	updated := existing
	updated.Verdict = strings.TrimSpace(cmd.Verdict)
	updated.Score = cmd.Score
	if !cmd.EvaluatedAt.IsZero() {
		updated.EvaluatedAt = cmd.EvaluatedAt.UTC()
	}
	updated.UpdatedAt = uc.now()
	if err := uc.Evaluations.UpdateEvaluation(ctx, updated); err != nil {
		return entities.Evaluation{}, err
	}

	logger.Info("evaluation revised",
		"event", "evaluation_revised",
		"module", "award-program/evaluation-ledger",
		"layer", "application",
		"evaluation_id", updated.EvaluationID,
		"principal_id", strings.TrimSpace(cmd.PrincipalID),
	)
	return updated, nil
}

// DeleteEvaluationCommand is the administrative correction path.
type DeleteEvaluationCommand struct {
	PrincipalID   string
	PrincipalRole string
	EvaluationID  string
}

func (uc LedgerUseCase) DeleteEvaluation(ctx context.Context, cmd DeleteEvaluationCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Policy.Authorize(ctx, cmd.PrincipalID, cmd.PrincipalRole, "evaluation.delete", "evaluation", "", ""); err != nil {
		return err
	}
	evaluationID := strings.TrimSpace(cmd.EvaluationID)
	if err := uc.Evaluations.DeleteEvaluation(ctx, evaluationID); err != nil {
		return err
	}

	logger.Info("evaluation deleted",
		"event", "evaluation_deleted",
		"module", "award-program/evaluation-ledger",
		"layer", "application",
		"evaluation_id", evaluationID,
		"principal_id", strings.TrimSpace(cmd.PrincipalID),
	)
	return nil
}

// loadForMutation fetches the evaluation and gates the mutation. A missing id
// still runs the guard against an empty owner, so a non-owner probe gets the
// same forbidden answer whether or not the id is real; only admins learn it
// is missing.
func (uc LedgerUseCase) loadForMutation(ctx context.Context, principalID string, principalRole string, action string, evaluationID string) (entities.Evaluation, error) {
	existing, err := uc.Evaluations.GetEvaluation(ctx, strings.TrimSpace(evaluationID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrEvaluationNotFound) {
			if guardErr := uc.Policy.Authorize(ctx, principalID, principalRole, action, "evaluation", "", ""); guardErr != nil {
				return entities.Evaluation{}, guardErr
			}
		}
		return entities.Evaluation{}, err
	}
	if err := uc.Policy.Authorize(ctx, principalID, principalRole, action, "evaluation", existing.EvaluatorID, ""); err != nil {
		return entities.Evaluation{}, err
	}
	return existing, nil
}
