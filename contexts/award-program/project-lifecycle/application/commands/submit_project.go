package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "laureate/contexts/award-program/project-lifecycle/application"
	"laureate/contexts/award-program/project-lifecycle/domain/entities"
	domainerrors "laureate/contexts/award-program/project-lifecycle/domain/errors"
	"laureate/contexts/award-program/project-lifecycle/ports"
)

// SubmitProjectCommand is the write-model input for a new competition entry.
type SubmitProjectCommand struct {
	PrincipalID   string
	PrincipalRole string
	AwardID       string
	Title         string
	Summary       string
	TopicArea     string
	CoauthorIDs   []string
	ArtifactPath  string
}

// ProjectUseCase orchestrates project mutations: policy gating, field-level
// validation against the award and account directories, and persistence.
type ProjectUseCase struct {
	Projects ports.ProjectRepository
	Awards   ports.AwardDirectory
	Accounts ports.AccountDirectory
	Policy   ports.PolicyGuard
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// SubmitProject validates and persists a new pending project. The author id
// is stamped from the principal, never taken from the request payload.
func (uc ProjectUseCase) SubmitProject(ctx context.Context, cmd SubmitProjectCommand) (entities.Project, error) {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Policy.Authorize(ctx, cmd.PrincipalID, cmd.PrincipalRole, "project.create", "project", "", ""); err != nil {
		return entities.Project{}, err
	}

	authorID := strings.TrimSpace(cmd.PrincipalID)
	fields := validateProjectFields(cmd.Title, cmd.Summary, cmd.TopicArea)

	awardID := strings.TrimSpace(cmd.AwardID)
	if awardID == "" {
		fields = append(fields, domainerrors.FieldError{Field: "award_id", Message: "award_id is required"})
	} else if _, ok, err := uc.Awards.GetAwardRef(ctx, awardID); err != nil {
		return entities.Project{}, err
	} else if !ok {
		fields = append(fields, domainerrors.FieldError{Field: "award_id", Message: "award does not exist"})
	}

	coauthors, coauthorFields, err := uc.resolveCoauthors(ctx, authorID, cmd.CoauthorIDs)
	if err != nil {
		return entities.Project{}, err
	}
	fields = append(fields, coauthorFields...)

	if len(fields) > 0 {
		logger.Warn("project submit validation failed",
			"event", "project_submit_validation_failed",
			"module", "award-program/project-lifecycle",
			"layer", "application",
			"principal_id", authorID,
			"field_errors", len(fields),
		)
		return entities.Project{}, &domainerrors.ValidationError{Fields: fields}
	}

	projectID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	now := uc.now()
	project := entities.Project{
		ProjectID:    projectID,
		AwardID:      awardID,
		AuthorID:     authorID,
		Title:        strings.TrimSpace(cmd.Title),
		Summary:      strings.TrimSpace(cmd.Summary),
		TopicArea:    strings.TrimSpace(cmd.TopicArea),
		CoauthorIDs:  coauthors,
		ArtifactPath: strings.TrimSpace(cmd.ArtifactPath),
		Status:       entities.StatusPending,
		SubmittedAt:  now,
		UpdatedAt:    now,
	}
	if err := uc.Projects.CreateProject(ctx, project); err != nil {
		return entities.Project{}, err
	}

	logger.Info("project submitted",
		"event", "project_submitted",
		"module", "award-program/project-lifecycle",
		"layer", "application",
		"project_id", project.ProjectID,
		"award_id", project.AwardID,
		"author_id", project.AuthorID,
		"coauthors", len(project.CoauthorIDs),
	)
	return project, nil
}

func validateProjectFields(title string, summary string, topicArea string) []domainerrors.FieldError {
	var fields []domainerrors.FieldError
	if strings.TrimSpace(title) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(summary) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "summary", Message: "summary is required"})
	}
	if strings.TrimSpace(topicArea) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "topic_area", Message: "topic_area is required"})
	}
	return fields
}

// resolveCoauthors checks every co-author id against the account directory:
// each must exist, hold the author role, appear once, and differ from the
// submitting author.
func (uc ProjectUseCase) resolveCoauthors(ctx context.Context, authorID string, coauthorIDs []string) ([]string, []domainerrors.FieldError, error) {
	resolved := make([]string, 0, len(coauthorIDs))
	var fields []domainerrors.FieldError
	seen := make(map[string]bool, len(coauthorIDs))
	for i, raw := range coauthorIDs {
		field := fmt.Sprintf("coauthor_ids[%d]", i)
		coauthorID := strings.TrimSpace(raw)
		if coauthorID == "" {
			fields = append(fields, domainerrors.FieldError{Field: field, Message: "co-author id is required"})
			continue
		}
		if coauthorID == authorID {
			fields = append(fields, domainerrors.FieldError{Field: field, Message: "the submitting author cannot be a co-author"})
			continue
		}
		if seen[coauthorID] {
			fields = append(fields, domainerrors.FieldError{Field: field, Message: "duplicate co-author"})
			continue
		}
		seen[coauthorID] = true

		account, ok, err := uc.Accounts.GetAccountRef(ctx, coauthorID)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			fields = append(fields, domainerrors.FieldError{Field: field, Message: "co-author account does not exist"})
			continue
		}
		if account.Role != "author" {
			fields = append(fields, domainerrors.FieldError{Field: field, Message: "co-author must hold the author role"})
			continue
		}
		resolved = append(resolved, coauthorID)
	}
	return resolved, fields, nil
}

func (uc ProjectUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
