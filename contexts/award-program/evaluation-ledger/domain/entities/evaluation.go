package entities

import "time"

const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Evaluation is one evaluator's verdict on one project. A project can hold
// evaluations from several evaluators but at most one per evaluator.
type Evaluation struct {
	EvaluationID string
	ProjectID    string
	EvaluatorID  string
	Verdict      string
	Score        float64
	EvaluatedAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ScoreInRange(score float64) bool {
	return score >= MinScore && score <= MaxScore
}
