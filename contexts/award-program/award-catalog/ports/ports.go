package ports

import (
	"context"
	"time"

	"laureate/contexts/award-program/award-catalog/domain/entities"
)

type AwardRepository interface {
	// CreateAward persists the award and its stages all-or-nothing.
	CreateAward(ctx context.Context, award entities.Award) error
	// UpdateAward replaces the full stage set with the award row in one
	// transaction so no reader observes a stage-less award.
	UpdateAward(ctx context.Context, award entities.Award) error
	// DeleteAwardCascade removes stages, projects under the award, and their
	// evaluations together with the award row.
	DeleteAwardCascade(ctx context.Context, awardID string) (entities.CascadeResult, error)
	GetAward(ctx context.Context, awardID string) (entities.Award, error)
	ListAwards(ctx context.Context) ([]entities.Award, error)
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
