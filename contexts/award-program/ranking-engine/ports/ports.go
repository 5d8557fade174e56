package ports

import (
	"context"
	"time"
)

// AwardScan, ProjectScan, and ScoreScan are the read-only projections the
// ranking computation consumes. They mirror rows owned by the catalog,
// lifecycle, and ledger modules.
type AwardScan struct {
	AwardID string
	Name    string
	Year    int
}

type ProjectScan struct {
	ProjectID   string
	AwardID     string
	AuthorID    string
	Title       string
	Status      string
	SubmittedAt time.Time
}

type ScoreScan struct {
	ProjectID string
	Score     float64
}

type RankingSource interface {
	ListAwards(ctx context.Context) ([]AwardScan, error)
	GetAward(ctx context.Context, awardID string) (AwardScan, bool, error)
	ListEvaluatedProjects(ctx context.Context) ([]ProjectScan, error)
	ListScores(ctx context.Context) ([]ScoreScan, error)
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
