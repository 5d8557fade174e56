package ports

import (
	"context"
	"time"

	"laureate/contexts/award-program/evaluation-ledger/domain/entities"
)

type EvaluationRepository interface {
	// CreateEvaluationAndMarkEvaluated inserts the evaluation and flips the
	// project status pending -> evaluated in the same transaction. The flip
	// is a compare-and-set on the pending state; losing that race to a
	// concurrent evaluation is not an error. A second evaluation by the same
	// evaluator returns ErrAlreadyEvaluated.
	CreateEvaluationAndMarkEvaluated(ctx context.Context, evaluation entities.Evaluation) error
	UpdateEvaluation(ctx context.Context, evaluation entities.Evaluation) error
	DeleteEvaluation(ctx context.Context, evaluationID string) error
	GetEvaluation(ctx context.Context, evaluationID string) (entities.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]entities.Evaluation, error)
	ListByEvaluator(ctx context.Context, evaluatorID string) ([]entities.Evaluation, error)
}

// ProjectRef is the read-only project slice the ledger validates against and
// serves in the evaluator queue.
type ProjectRef struct {
	ProjectID   string
	AwardID     string
	AuthorID    string
	Title       string
	Status      string
	SubmittedAt time.Time
}

type ProjectDirectory interface {
	GetProjectRef(ctx context.Context, projectID string) (ProjectRef, bool, error)
	ListPendingProjects(ctx context.Context) ([]ProjectRef, error)
}

// PolicyGuard is satisfied by the policy module's guard, wired in bootstrap.
type PolicyGuard interface {
	Authorize(
		ctx context.Context,
		principalID string,
		principalRole string,
		action string,
		resourceType string,
		ownerID string,
		resourceState string,
	) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
