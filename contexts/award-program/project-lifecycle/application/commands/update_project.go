package commands

import (
	"context"
	"errors"
	"strings"

	application "laureate/contexts/award-program/project-lifecycle/application"
	"laureate/contexts/award-program/project-lifecycle/domain/entities"
	domainerrors "laureate/contexts/award-program/project-lifecycle/domain/errors"
)

// UpdateProjectCommand replaces the editable fields of a pending project.
// AwardID and AuthorID are immutable after submission.
type UpdateProjectCommand struct {
	PrincipalID   string
	PrincipalRole string
	ProjectID     string
	Title         string
	Summary       string
	TopicArea     string
	CoauthorIDs   []string
	ArtifactPath  string
}

func (uc ProjectUseCase) UpdateProject(ctx context.Context, cmd UpdateProjectCommand) (entities.Project, error) {
	logger := application.ResolveLogger(uc.Logger)
	existing, err := uc.loadForMutation(ctx, cmd.PrincipalID, cmd.PrincipalRole, "project.update", cmd.ProjectID)
	if err != nil {
		return entities.Project{}, err
	}

	fields := validateProjectFields(cmd.Title, cmd.Summary, cmd.TopicArea)
	coauthors, coauthorFields, err := uc.resolveCoauthors(ctx, existing.AuthorID, cmd.CoauthorIDs)
	if err != nil {
		return entities.Project{}, err
	}
	fields = append(fields, coauthorFields...)
	if len(fields) > 0 {
		return entities.Project{}, &domainerrors.ValidationError{Fields: fields}
	}

	updated := existing
	updated.Title = strings.TrimSpace(cmd.Title)
	updated.Summary = strings.TrimSpace(cmd.Summary)
	updated.TopicArea = strings.TrimSpace(cmd.TopicArea)
	updated.CoauthorIDs = coauthors
	updated.ArtifactPath = strings.TrimSpace(cmd.ArtifactPath)
	updated.UpdatedAt = uc.now()
	// Admins keep the corrective path on evaluated projects; everyone else
	// writes through the pending-only predicate so a concurrent evaluation
	// cannot slip in between the lock check and the commit.
	if isAdmin(cmd.PrincipalRole) {
		err = uc.Projects.UpdateProject(ctx, updated)
	} else {
		err = uc.Projects.UpdateProjectIfPending(ctx, updated)
	}
	if err != nil {
		return entities.Project{}, err
	}

	logger.Info("project updated",
		"event", "project_updated",
		"module", "award-program/project-lifecycle",
		"layer", "application",
		"project_id", updated.ProjectID,
		"principal_id", strings.TrimSpace(cmd.PrincipalID),
	)
	return updated, nil
}

// WithdrawProjectCommand removes a submission from the competition.
type WithdrawProjectCommand struct {
	PrincipalID   string
	PrincipalRole string
	ProjectID     string
}

func (uc ProjectUseCase) WithdrawProject(ctx context.Context, cmd WithdrawProjectCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	existing, err := uc.loadForMutation(ctx, cmd.PrincipalID, cmd.PrincipalRole, "project.delete", cmd.ProjectID)
	if err != nil {
		return err
	}
	if isAdmin(cmd.PrincipalRole) {
		err = uc.Projects.DeleteProject(ctx, existing.ProjectID)
	} else {
		err = uc.Projects.DeleteProjectIfPending(ctx, existing.ProjectID)
	}
	if err != nil {
		return err
	}

	logger.Info("project withdrawn",
		"event", "project_withdrawn",
		"module", "award-program/project-lifecycle",
		"layer", "application",
		"project_id", existing.ProjectID,
		"principal_id", strings.TrimSpace(cmd.PrincipalID),
	)
	return nil
}

// loadForMutation fetches the project and gates the mutation. When the
// project does not exist the guard still runs against an empty owner, so a
// non-owner probe gets the same forbidden answer whether or not the id is
// real; only admins learn it is missing. A project that already left the
// pending state is locked for everyone but admins.
func (uc ProjectUseCase) loadForMutation(ctx context.Context, principalID string, principalRole string, action string, projectID string) (entities.Project, error) {
	existing, err := uc.Projects.GetProject(ctx, strings.TrimSpace(projectID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrProjectNotFound) {
			if guardErr := uc.Policy.Authorize(ctx, principalID, principalRole, action, "project", "", ""); guardErr != nil {
				return entities.Project{}, guardErr
			}
		}
		return entities.Project{}, err
	}
	if err := uc.Policy.Authorize(ctx, principalID, principalRole, action, "project", existing.AuthorID, string(existing.Status)); err != nil {
		return entities.Project{}, err
	}
	if !existing.Pending() && !isAdmin(principalRole) {
		return entities.Project{}, domainerrors.ErrProjectLocked
	}
	return existing, nil
}

func isAdmin(principalRole string) bool {
	return strings.TrimSpace(principalRole) == "admin"
}
