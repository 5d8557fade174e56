package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"laureate/contexts/award-program/project-lifecycle/application/commands"
	"laureate/contexts/award-program/project-lifecycle/application/queries"
	"laureate/contexts/award-program/project-lifecycle/domain/entities"
	httptransport "laureate/contexts/award-program/project-lifecycle/transport/http"
)

type Handler struct {
	Projects commands.ProjectUseCase
	Board    queries.BoardUseCase
	Logger   *slog.Logger
}

func (h Handler) SubmitProjectHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	req httptransport.SubmitProjectRequest,
) (httptransport.ProjectResponse, error) {
	project, err := h.Projects.SubmitProject(ctx, commands.SubmitProjectCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AwardID:       req.AwardID,
		Title:         req.Title,
		Summary:       req.Summary,
		TopicArea:     req.TopicArea,
		CoauthorIDs:   req.CoauthorIDs,
		ArtifactPath:  req.ArtifactPath,
	})
	if err != nil {
		return httptransport.ProjectResponse{}, err
	}
	return toProjectResponse(project), nil
}

func (h Handler) UpdateProjectHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	projectID string,
	req httptransport.UpdateProjectRequest,
) (httptransport.ProjectResponse, error) {
	project, err := h.Projects.UpdateProject(ctx, commands.UpdateProjectCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		ProjectID:     projectID,
		Title:         req.Title,
		Summary:       req.Summary,
		TopicArea:     req.TopicArea,
		CoauthorIDs:   req.CoauthorIDs,
		ArtifactPath:  req.ArtifactPath,
	})
	if err != nil {
		return httptransport.ProjectResponse{}, err
	}
	return toProjectResponse(project), nil
}

func (h Handler) WithdrawProjectHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	projectID string,
) error {
	return h.Projects.WithdrawProject(ctx, commands.WithdrawProjectCommand{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		ProjectID:     projectID,
	})
}

func (h Handler) GetProjectHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	projectID string,
) (httptransport.ProjectResponse, error) {
	project, err := h.Board.GetProject(ctx, queries.GetProjectQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		ProjectID:     projectID,
	})
	if err != nil {
		return httptransport.ProjectResponse{}, err
	}
	return toProjectResponse(project), nil
}

func (h Handler) ListProjectsHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	awardID string,
) (httptransport.ProjectListResponse, error) {
	projects, err := h.Board.ListProjects(ctx, queries.ListProjectsQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AwardID:       awardID,
	})
	if err != nil {
		return httptransport.ProjectListResponse{}, err
	}
	return toProjectListResponse(projects), nil
}

func (h Handler) ListProjectsByAuthorHandler(
	ctx context.Context,
	principalID string,
	principalRole string,
	authorID string,
) (httptransport.ProjectListResponse, error) {
	projects, err := h.Board.ListProjectsByAuthor(ctx, queries.ListProjectsByAuthorQuery{
		PrincipalID:   principalID,
		PrincipalRole: principalRole,
		AuthorID:      authorID,
	})
	if err != nil {
		return httptransport.ProjectListResponse{}, err
	}
	return toProjectListResponse(projects), nil
}

func toProjectResponse(project entities.Project) httptransport.ProjectResponse {
	return httptransport.ProjectResponse{
		ProjectID:    project.ProjectID,
		AwardID:      project.AwardID,
		AuthorID:     project.AuthorID,
		Title:        project.Title,
		Summary:      project.Summary,
		TopicArea:    project.TopicArea,
		CoauthorIDs:  project.CoauthorIDs,
		ArtifactPath: project.ArtifactPath,
		Status:       string(project.Status),
		SubmittedAt:  project.SubmittedAt.UTC().Format(time.RFC3339),
	}
}

func toProjectListResponse(projects []entities.Project) httptransport.ProjectListResponse {
	items := make([]httptransport.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		items = append(items, toProjectResponse(project))
	}
	return httptransport.ProjectListResponse{Items: items}
}
