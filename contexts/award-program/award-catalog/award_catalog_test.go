package awardcatalog_test

import (
	"context"
	"errors"
	"testing"

	awardcatalog "laureate/contexts/award-program/award-catalog"
	"laureate/contexts/award-program/award-catalog/domain/entities"
	domainerrors "laureate/contexts/award-program/award-catalog/domain/errors"
	httptransport "laureate/contexts/award-program/award-catalog/transport/http"
	policy "laureate/contexts/identity-access/policy-service"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func newCatalogModule(seed []entities.Award) awardcatalog.Module {
	guard := policy.NewModule(policy.Dependencies{}).Guard
	return awardcatalog.NewInMemoryModule(seed, guard, nil)
}

func TestAwardCreateUpdateDeleteCascade(t *testing.T) {
	module := newCatalogModule(nil)

	created, err := module.Handler.CreateAwardHandler(context.Background(), "admin-1", "admin", httptransport.CreateAwardRequest{
		Name:        "National Science Prize",
		Description: "Annual research award",
		Year:        2026,
		Stages: []httptransport.StagePayload{
			{Label: "Submissions", StartDate: "2026-01-01", EndDate: "2026-03-31"},
			{Label: "Review", StartDate: "2026-04-01", EndDate: "2026-06-30"},
		},
	})
	if err != nil {
		t.Fatalf("create award failed: %v", err)
	}
	if created.AwardID == "" {
		t.Fatalf("expected generated award id")
	}
	if created.CreatorID != "admin-1" {
		t.Fatalf("expected creator stamped from principal, got %s", created.CreatorID)
	}
	if len(created.Stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(created.Stages))
	}

	updated, err := module.Handler.UpdateAwardHandler(context.Background(), "admin-2", "admin", created.AwardID, httptransport.UpdateAwardRequest{
		Name:        "National Science Prize",
		Description: "Annual research award, revised",
		Year:        2027,
		Stages: []httptransport.StagePayload{
			{Label: "Submissions", StartDate: "2027-01-01", EndDate: "2027-05-31"},
		},
	})
	if err != nil {
		t.Fatalf("update award failed: %v", err)
	}
	if updated.Year != 2027 {
		t.Fatalf("expected year 2027, got %d", updated.Year)
	}
	if updated.CreatorID != "admin-1" {
		t.Fatalf("expected original creator preserved, got %s", updated.CreatorID)
	}
	if len(updated.Stages) != 1 {
		t.Fatalf("expected stage set replaced, got %d stages", len(updated.Stages))
	}

	module.Store.SetProjectRef("project-1", created.AwardID)
	module.Store.SetProjectRef("project-2", created.AwardID)
	module.Store.SetEvaluationRef("evaluation-1", "project-1")

	result, err := module.Handler.DeleteAwardHandler(context.Background(), "admin-1", "admin", created.AwardID)
	if err != nil {
		t.Fatalf("delete award failed: %v", err)
	}
	if result.CascadedStages != 1 || result.CascadedProjects != 2 || result.CascadedEvaluations != 1 {
		t.Fatalf("unexpected cascade counts: %+v", result)
	}

	if _, err := module.Handler.GetAwardHandler(context.Background(), "admin-1", "admin", created.AwardID); !errors.Is(err, domainerrors.ErrAwardNotFound) {
		t.Fatalf("expected award not found after delete, got %v", err)
	}
}

func TestAwardCreateCollectsFieldErrors(t *testing.T) {
	module := newCatalogModule(nil)

	_, err := module.Handler.CreateAwardHandler(context.Background(), "admin-1", "admin", httptransport.CreateAwardRequest{
		Name:        "",
		Description: "Missing name and broken schedule",
		Year:        1990,
		Stages: []httptransport.StagePayload{
			{Label: "Review", StartDate: "2026-06-30", EndDate: "2026-04-01"},
		},
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validation *domainerrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	byField := make(map[string]string, len(validation.Fields))
	for _, field := range validation.Fields {
		byField[field.Field] = field.Message
	}
	for _, want := range []string{"name", "year", "stages[0]"} {
		if _, ok := byField[want]; !ok {
			t.Fatalf("expected field error for %q, got %v", want, validation.Fields)
		}
	}

	list, err := module.Handler.ListAwardsHandler(context.Background(), "admin-1", "admin")
	if err != nil {
		t.Fatalf("list awards failed: %v", err)
	}
	if len(list.Items) != 0 {
		t.Fatalf("expected nothing persisted after rejected create, got %d awards", len(list.Items))
	}
}

func TestAwardCreateRejectsMalformedStageDates(t *testing.T) {
	module := newCatalogModule(nil)

	_, err := module.Handler.CreateAwardHandler(context.Background(), "admin-1", "admin", httptransport.CreateAwardRequest{
		Name:        "Prize",
		Description: "Bad date payload",
		Year:        2026,
		Stages: []httptransport.StagePayload{
			{Label: "Submissions", StartDate: "not-a-date", EndDate: "2026-03-31"},
		},
	})
	var validation *domainerrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error for malformed date, got %v", err)
	}
}

func TestAwardMutationsAreAdminOnly(t *testing.T) {
	module := newCatalogModule(nil)

	_, err := module.Handler.CreateAwardHandler(context.Background(), "author-1", "author", httptransport.CreateAwardRequest{
		Name:        "Prize",
		Description: "Authors cannot publish awards",
		Year:        2026,
	})
	if !errors.Is(err, policyerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for author create, got %v", err)
	}

	if _, err := module.Handler.ListAwardsHandler(context.Background(), "", ""); !errors.Is(err, policyerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for anonymous list, got %v", err)
	}
}

func TestListAwardsSplitsAdminOwnership(t *testing.T) {
	module := newCatalogModule(nil)

	if _, err := module.Handler.CreateAwardHandler(context.Background(), "admin-1", "admin", httptransport.CreateAwardRequest{
		Name:        "Mine",
		Description: "Created by the caller",
		Year:        2026,
	}); err != nil {
		t.Fatalf("create award failed: %v", err)
	}
	if _, err := module.Handler.CreateAwardHandler(context.Background(), "admin-2", "admin", httptransport.CreateAwardRequest{
		Name:        "Theirs",
		Description: "Created by another admin",
		Year:        2026,
	}); err != nil {
		t.Fatalf("create award failed: %v", err)
	}

	asAdmin, err := module.Handler.ListAwardsHandler(context.Background(), "admin-1", "admin")
	if err != nil {
		t.Fatalf("list awards failed: %v", err)
	}
	if len(asAdmin.Items) != 2 || len(asAdmin.Mine) != 1 || len(asAdmin.Others) != 1 {
		t.Fatalf("unexpected admin split: items=%d mine=%d others=%d", len(asAdmin.Items), len(asAdmin.Mine), len(asAdmin.Others))
	}

	asAuthor, err := module.Handler.ListAwardsHandler(context.Background(), "author-1", "author")
	if err != nil {
		t.Fatalf("list awards as author failed: %v", err)
	}
	if len(asAuthor.Items) != 2 || asAuthor.Mine != nil || asAuthor.Others != nil {
		t.Fatalf("expected flat list for author, got mine=%v others=%v", asAuthor.Mine, asAuthor.Others)
	}
}
