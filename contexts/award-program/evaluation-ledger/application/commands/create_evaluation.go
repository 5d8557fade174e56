package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "laureate/contexts/award-program/evaluation-ledger/application"
	"laureate/contexts/award-program/evaluation-ledger/domain/entities"
	domainerrors "laureate/contexts/award-program/evaluation-ledger/domain/errors"
	"laureate/contexts/award-program/evaluation-ledger/ports"
)

// CreateEvaluationCommand records a verdict against a project. EvaluatedAt is
// optional; when zero the ledger stamps the current time.
type CreateEvaluationCommand struct {
	PrincipalID   string
	PrincipalRole string
	ProjectID     string
	Verdict       string
	Score         float64
	EvaluatedAt   time.Time
}

// LedgerUseCase orchestrates evaluation writes: policy gating, field-level
// validation, and the composite insert-plus-status-flip persistence call.
type LedgerUseCase struct {
	Evaluations ports.EvaluationRepository
	Projects    ports.ProjectDirectory
	Policy      ports.PolicyGuard
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

// CreateEvaluation validates and records a new evaluation. The evaluator id
// is stamped from the principal. The project flips pending -> evaluated with
// the insert; a project already evaluated by someone else stays evaluated and
// simply gains another verdict.
func (uc LedgerUseCase) CreateEvaluation(ctx context.Context, cmd CreateEvaluationCommand) (entities.Evaluation, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Policy.Authorize(ctx, cmd.PrincipalID, cmd.PrincipalRole, "evaluation.create", "evaluation", "", ""); err != nil {
		return entities.Evaluation{}, err
	}

	fields := validateEvaluationFields(cmd.Verdict, cmd.Score)
	projectID := strings.TrimSpace(cmd.ProjectID)
	if projectID == "" {
		fields = append(fields, domainerrors.FieldError{Field: "project_id", Message: "project_id is required"})
	} else if _, ok, err := uc.Projects.GetProjectRef(ctx, projectID); err != nil {
		return entities.Evaluation{}, err
	} else if !ok {
		fields = append(fields, domainerrors.FieldError{Field: "project_id", Message: "project does not exist"})
	}
	if len(fields) > 0 {
		logger.Warn("evaluation create validation failed",
			"event", "evaluation_create_validation_failed",
			"module", "award-program/evaluation-ledger",
			"layer", "application",
			"principal_id", strings.TrimSpace(cmd.PrincipalID),
			"field_errors", len(fields),
		)
		return entities.Evaluation{}, &domainerrors.ValidationError{Fields: fields}
	}

	evaluationID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Evaluation{}, err
	}
	now := uc.now()
	evaluatedAt := cmd.EvaluatedAt.UTC()
	if cmd.EvaluatedAt.IsZero() {
		evaluatedAt = now
	}
	evaluation := entities.Evaluation{
		EvaluationID: evaluationID,
		ProjectID:    projectID,
		EvaluatorID:  strings.TrimSpace(cmd.PrincipalID),
		Verdict:      strings.TrimSpace(cmd.Verdict),
		Score:        cmd.Score,
		EvaluatedAt:  evaluatedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.Evaluations.CreateEvaluationAndMarkEvaluated(ctx, evaluation); err != nil {
		return entities.Evaluation{}, err
	}

	logger.Info("evaluation recorded",
		"event", "evaluation_recorded",
		"module", "award-program/evaluation-ledger",
		"layer", "application",
		"evaluation_id", evaluation.EvaluationID,
		"project_id", evaluation.ProjectID,
		"evaluator_id", evaluation.EvaluatorID,
		"score", evaluation.Score,
	)
	return evaluation, nil
}

func validateEvaluationFields(verdict string, score float64) []domainerrors.FieldError {
	var fields []domainerrors.FieldError
	if strings.TrimSpace(verdict) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "verdict", Message: "verdict is required"})
	}
	if !entities.ScoreInRange(score) {
		fields = append(fields, domainerrors.FieldError{
			Field:   "score",
			Message: fmt.Sprintf("score must be between %.0f and %.0f", entities.MinScore, entities.MaxScore),
		})
	}
	return fields
}

func (uc LedgerUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
