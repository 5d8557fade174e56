package projectlifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	projectlifecycle "laureate/contexts/award-program/project-lifecycle"
	"laureate/contexts/award-program/project-lifecycle/adapters/memory"
	"laureate/contexts/award-program/project-lifecycle/domain/entities"
	domainerrors "laureate/contexts/award-program/project-lifecycle/domain/errors"
	"laureate/contexts/award-program/project-lifecycle/ports"
	httptransport "laureate/contexts/award-program/project-lifecycle/transport/http"
	policy "laureate/contexts/identity-access/policy-service"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func newLifecycleModule(seed []entities.Project) projectlifecycle.Module {
	guard := policy.NewModule(policy.Dependencies{}).Guard
	module := projectlifecycle.NewInMemoryModule(seed, guard, nil)
	module.Store.SetAwardRef(ports.AwardRef{AwardID: "award-1", Year: 2026})
	module.Store.SetAccountRef(ports.AccountRef{AccountID: "author-1", Role: "author"})
	module.Store.SetAccountRef(ports.AccountRef{AccountID: "author-2", Role: "author"})
	module.Store.SetAccountRef(ports.AccountRef{AccountID: "evaluator-1", Role: "evaluator"})
	return module
}

func TestProjectSubmitAndUpdateWhilePending(t *testing.T) {
	module := newLifecycleModule(nil)

	created, err := module.Handler.SubmitProjectHandler(context.Background(), "author-1", "author", httptransport.SubmitProjectRequest{
		AwardID:      "award-1",
		Title:        "Protein folding atlas",
		Summary:      "A survey of folding pathways",
		TopicArea:    "biochemistry",
		CoauthorIDs:  []string{"author-2"},
		ArtifactPath: "uploads/atlas.pdf",
	})
	if err != nil {
		t.Fatalf("submit project failed: %v", err)
	}
	if created.Status != "pending" {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if created.AuthorID != "author-1" {
		t.Fatalf("expected author stamped from principal, got %s", created.AuthorID)
	}
	if len(created.CoauthorIDs) != 1 || created.CoauthorIDs[0] != "author-2" {
		t.Fatalf("unexpected coauthors: %v", created.CoauthorIDs)
	}

	updated, err := module.Handler.UpdateProjectHandler(context.Background(), "author-1", "author", created.ProjectID, httptransport.UpdateProjectRequest{
		Title:     "Protein folding atlas, revised",
		Summary:   "A survey of folding pathways",
		TopicArea: "biochemistry",
	})
	if err != nil {
		t.Fatalf("update project failed: %v", err)
	}
	if updated.Title != "Protein folding atlas, revised" {
		t.Fatalf("unexpected title after update: %s", updated.Title)
	}
	if len(updated.CoauthorIDs) != 0 {
		t.Fatalf("expected coauthor set replaced, got %v", updated.CoauthorIDs)
	}

	if err := module.Handler.WithdrawProjectHandler(context.Background(), "author-1", "author", created.ProjectID); err != nil {
		t.Fatalf("withdraw project failed: %v", err)
	}
	if _, err := module.Handler.GetProjectHandler(context.Background(), "author-1", "author", created.ProjectID); !errors.Is(err, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected project gone after withdrawal, got %v", err)
	}
}

func TestProjectSubmitCollectsFieldErrors(t *testing.T) {
	module := newLifecycleModule(nil)

	_, err := module.Handler.SubmitProjectHandler(context.Background(), "author-1", "author", httptransport.SubmitProjectRequest{
		AwardID:     "award-missing",
		Title:       "",
		Summary:     "summary",
		TopicArea:   "physics",
		CoauthorIDs: []string{"author-1", "evaluator-1", "author-2", "author-2"},
	})
	var validation *domainerrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	byField := make(map[string]string, len(validation.Fields))
	for _, field := range validation.Fields {
		byField[field.Field] = field.Message
	}
	for _, want := range []string{"title", "award_id", "coauthor_ids[0]", "coauthor_ids[1]", "coauthor_ids[3]"} {
		if _, ok := byField[want]; !ok {
			t.Fatalf("expected field error for %q, got %v", want, validation.Fields)
		}
	}

	projects, err := module.Handler.ListProjectsHandler(context.Background(), "author-1", "author", "")
	if err != nil {
		t.Fatalf("list projects failed: %v", err)
	}
	if len(projects.Items) != 0 {
		t.Fatalf("expected nothing persisted after rejected submit, got %d projects", len(projects.Items))
	}
}

func TestProjectLockedOnceEvaluated(t *testing.T) {
	now := time.Now().UTC()
	module := newLifecycleModule([]entities.Project{{
		ProjectID:   "project-1",
		AwardID:     "award-1",
		AuthorID:    "author-1",
		Title:       "Graph spectra",
		Summary:     "Spectral methods",
		TopicArea:   "mathematics",
		Status:      entities.StatusEvaluated,
		SubmittedAt: now.Add(-48 * time.Hour),
		UpdatedAt:   now.Add(-24 * time.Hour),
	}})

	_, err := module.Handler.UpdateProjectHandler(context.Background(), "author-1", "author", "project-1", httptransport.UpdateProjectRequest{
		Title:     "Graph spectra v2",
		Summary:   "Spectral methods",
		TopicArea: "mathematics",
	})
	if !errors.Is(err, domainerrors.ErrProjectLocked) {
		t.Fatalf("expected locked conflict for owner edit of evaluated project, got %v", err)
	}
	if err := module.Handler.WithdrawProjectHandler(context.Background(), "author-1", "author", "project-1"); !errors.Is(err, domainerrors.ErrProjectLocked) {
		t.Fatalf("expected locked conflict for owner withdrawal, got %v", err)
	}

	// Admins keep the corrective path open after evaluation.
	if err := module.Handler.WithdrawProjectHandler(context.Background(), "admin-1", "admin", "project-1"); err != nil {
		t.Fatalf("admin withdrawal of evaluated project failed: %v", err)
	}
}

func TestProjectOwnershipDeniedRegardlessOfExistence(t *testing.T) {
	now := time.Now().UTC()
	module := newLifecycleModule([]entities.Project{{
		ProjectID:   "project-1",
		AwardID:     "award-1",
		AuthorID:    "author-1",
		Title:       "Coral reef sensing",
		Summary:     "Remote sensing pipeline",
		TopicArea:   "ecology",
		Status:      entities.StatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}})

	req := httptransport.UpdateProjectRequest{Title: "x", Summary: "y", TopicArea: "z"}
	_, existingErr := module.Handler.UpdateProjectHandler(context.Background(), "author-2", "author", "project-1", req)
	if !errors.Is(existingErr, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner edit, got %v", existingErr)
	}
	_, missingErr := module.Handler.UpdateProjectHandler(context.Background(), "author-2", "author", "project-missing", req)
	if !errors.Is(missingErr, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for edit of unknown project, got %v", missingErr)
	}

	// Only admins learn whether the id was real.
	_, adminErr := module.Handler.UpdateProjectHandler(context.Background(), "admin-1", "admin", "project-missing", req)
	if !errors.Is(adminErr, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected not found for admin edit of unknown project, got %v", adminErr)
	}
}

func TestProjectSubmitRequiresAuthorRole(t *testing.T) {
	module := newLifecycleModule(nil)

	req := httptransport.SubmitProjectRequest{
		AwardID:   "award-1",
		Title:     "t",
		Summary:   "s",
		TopicArea: "a",
	}
	if _, err := module.Handler.SubmitProjectHandler(context.Background(), "evaluator-1", "evaluator", req); !errors.Is(err, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for evaluator submit, got %v", err)
	}
	if _, err := module.Handler.SubmitProjectHandler(context.Background(), "", "", req); !errors.Is(err, policyerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for anonymous submit, got %v", err)
	}
}

func TestListProjectsFiltersByAwardAndAuthor(t *testing.T) {
	now := time.Now().UTC()
	module := newLifecycleModule([]entities.Project{
		{ProjectID: "project-1", AwardID: "award-1", AuthorID: "author-1", Status: entities.StatusPending, SubmittedAt: now.Add(-2 * time.Hour)},
		{ProjectID: "project-2", AwardID: "award-2", AuthorID: "author-1", Status: entities.StatusPending, SubmittedAt: now.Add(-1 * time.Hour)},
		{ProjectID: "project-3", AwardID: "award-1", AuthorID: "author-2", Status: entities.StatusPending, SubmittedAt: now},
	})

	byAward, err := module.Handler.ListProjectsHandler(context.Background(), "evaluator-1", "evaluator", "award-1")
	if err != nil {
		t.Fatalf("list by award failed: %v", err)
	}
	if len(byAward.Items) != 2 {
		t.Fatalf("expected 2 projects under award-1, got %d", len(byAward.Items))
	}
	if byAward.Items[0].ProjectID != "project-1" {
		t.Fatalf("expected submission-time ordering, got %s first", byAward.Items[0].ProjectID)
	}

	byAuthor, err := module.Handler.ListProjectsByAuthorHandler(context.Background(), "author-1", "author", "author-1")
	if err != nil {
		t.Fatalf("list by author failed: %v", err)
	}
	if len(byAuthor.Items) != 2 {
		t.Fatalf("expected 2 projects for author-1, got %d", len(byAuthor.Items))
	}
}

// evaluationRacingStore lands an evaluation between the use case's pending
// read and its write, standing in for a ledger transaction committing on a
// concurrent request.
type evaluationRacingStore struct {
	*memory.Store
}

func (s evaluationRacingStore) UpdateProjectIfPending(ctx context.Context, project entities.Project) error {
	s.markEvaluated(ctx, project.ProjectID)
	return s.Store.UpdateProjectIfPending(ctx, project)
}

func (s evaluationRacingStore) DeleteProjectIfPending(ctx context.Context, projectID string) error {
	s.markEvaluated(ctx, projectID)
	return s.Store.DeleteProjectIfPending(ctx, projectID)
}

func (s evaluationRacingStore) markEvaluated(ctx context.Context, projectID string) {
	stored, err := s.Store.GetProject(ctx, projectID)
	if err != nil {
		return
	}
	stored.Status = entities.StatusEvaluated
	_ = s.Store.UpdateProject(ctx, stored)
}

func TestProjectLockHoldsAgainstConcurrentEvaluation(t *testing.T) {
	now := time.Now().UTC()
	store := memory.NewStore([]entities.Project{{
		ProjectID:   "project-1",
		AwardID:     "award-1",
		AuthorID:    "author-1",
		Title:       "Tidal resonance models",
		Summary:     "Resonance in shallow basins",
		TopicArea:   "oceanography",
		Status:      entities.StatusPending,
		SubmittedAt: now.Add(-time.Hour),
		UpdatedAt:   now.Add(-time.Hour),
	}})
	store.SetAwardRef(ports.AwardRef{AwardID: "award-1", Year: 2026})
	store.SetAccountRef(ports.AccountRef{AccountID: "author-1", Role: "author"})
	guard := policy.NewModule(policy.Dependencies{}).Guard
	module := projectlifecycle.NewModule(projectlifecycle.Dependencies{
		Projects: evaluationRacingStore{Store: store},
		Awards:   store,
		Accounts: store,
		Policy:   guard,
		Clock:    store,
		IDGen:    store,
	})

	_, err := module.Handler.UpdateProjectHandler(context.Background(), "author-1", "author", "project-1", httptransport.UpdateProjectRequest{
		Title:     "Tidal resonance models v2",
		Summary:   "Resonance in shallow basins",
		TopicArea: "oceanography",
	})
	if !errors.Is(err, domainerrors.ErrProjectLocked) {
		t.Fatalf("expected locked conflict when evaluation lands mid-update, got %v", err)
	}
	stored, err := store.GetProject(context.Background(), "project-1")
	if err != nil {
		t.Fatalf("get project after refused update failed: %v", err)
	}
	if stored.Title != "Tidal resonance models" {
		t.Fatalf("refused update still changed the title: %s", stored.Title)
	}

	// Re-arm the race for the withdrawal path.
	stored.Status = entities.StatusPending
	if err := store.UpdateProject(context.Background(), stored); err != nil {
		t.Fatalf("reset project to pending failed: %v", err)
	}
	if err := module.Handler.WithdrawProjectHandler(context.Background(), "author-1", "author", "project-1"); !errors.Is(err, domainerrors.ErrProjectLocked) {
		t.Fatalf("expected locked conflict when evaluation lands mid-withdrawal, got %v", err)
	}
	if _, err := store.GetProject(context.Background(), "project-1"); err != nil {
		t.Fatalf("refused withdrawal still deleted the project: %v", err)
	}
}
