package queries

import (
	"context"
	"log/slog"
	"strings"

	"laureate/contexts/award-program/project-lifecycle/domain/entities"
	"laureate/contexts/award-program/project-lifecycle/ports"
)

// BoardUseCase serves project reads for every authenticated role.
type BoardUseCase struct {
	Projects ports.ProjectRepository
	Policy   ports.PolicyGuard
	Logger   *slog.Logger
}

type GetProjectQuery struct {
	PrincipalID   string
	PrincipalRole string
	ProjectID     string
}

func (uc BoardUseCase) GetProject(ctx context.Context, query GetProjectQuery) (entities.Project, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "project.read", "project", "", ""); err != nil {
		return entities.Project{}, err
	}
	return uc.Projects.GetProject(ctx, strings.TrimSpace(query.ProjectID))
}

type ListProjectsQuery struct {
	PrincipalID   string
	PrincipalRole string
	AwardID       string
}

func (uc BoardUseCase) ListProjects(ctx context.Context, query ListProjectsQuery) ([]entities.Project, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "project.read", "project", "", ""); err != nil {
		return nil, err
	}
	return uc.Projects.ListProjects(ctx, strings.TrimSpace(query.AwardID))
}

type ListProjectsByAuthorQuery struct {
	PrincipalID   string
	PrincipalRole string
	AuthorID      string
}

func (uc BoardUseCase) ListProjectsByAuthor(ctx context.Context, query ListProjectsByAuthorQuery) ([]entities.Project, error) {
	if err := uc.Policy.Authorize(ctx, query.PrincipalID, query.PrincipalRole, "project.read", "project", "", ""); err != nil {
		return nil, err
	}
	return uc.Projects.ListProjectsByAuthor(ctx, strings.TrimSpace(query.AuthorID))
}
