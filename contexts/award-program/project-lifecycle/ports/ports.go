package ports

import (
	"context"
	"time"

	"laureate/contexts/award-program/project-lifecycle/domain/entities"
)

type ProjectRepository interface {
	CreateProject(ctx context.Context, project entities.Project) error
	UpdateProject(ctx context.Context, project entities.Project) error
	// UpdateProjectIfPending applies the update only while the stored status
	// is still pending, so a concurrent evaluation cannot be raced past the
	// lock. Returns ErrProjectLocked when the project left pending between
	// the caller's read and this write.
	UpdateProjectIfPending(ctx context.Context, project entities.Project) error
	// DeleteProject removes the project and any evaluations recorded against
	// it in one transaction.
	DeleteProject(ctx context.Context, projectID string) error
	// DeleteProjectIfPending is DeleteProject guarded by the same pending
	// predicate as UpdateProjectIfPending.
	DeleteProjectIfPending(ctx context.Context, projectID string) error
	GetProject(ctx context.Context, projectID string) (entities.Project, error)
	// ListProjects returns all projects, or only those under awardID when it
	// is non-empty.
	ListProjects(ctx context.Context, awardID string) ([]entities.Project, error)
	ListProjectsByAuthor(ctx context.Context, authorID string) ([]entities.Project, error)
}

// AwardRef is the read-only slice of the award catalog this module needs to
// validate submissions against.
type AwardRef struct {
	AwardID string
	Year    int
}

type AwardDirectory interface {
	// GetAwardRef reports whether the award exists; ok is false when absent.
	GetAwardRef(ctx context.Context, awardID string) (AwardRef, bool, error)
}

// AccountRef is the identity projection used to resolve co-author ids.
type AccountRef struct {
	AccountID string
	Role      string
}

type AccountDirectory interface {
	GetAccountRef(ctx context.Context, accountID string) (AccountRef, bool, error)
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
