package rankingengine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	rankingengine "laureate/contexts/award-program/ranking-engine"
	domainerrors "laureate/contexts/award-program/ranking-engine/domain/errors"
	"laureate/contexts/award-program/ranking-engine/ports"
	policy "laureate/contexts/identity-access/policy-service"
	policyerrors "laureate/contexts/identity-access/policy-service/domain/errors"
)

func newRankingModule(threshold float64) rankingengine.Module {
	guard := policy.NewModule(policy.Dependencies{}).Guard
	return rankingengine.NewInMemoryModule(guard, threshold, nil)
}

func seedAwardWithProjects(module rankingengine.Module) {
	now := time.Now().UTC()
	module.Store.SetAward(ports.AwardScan{AwardID: "award-1", Name: "Physics Prize", Year: 2026})
	module.Store.AddProject(ports.ProjectScan{ProjectID: "project-a", AwardID: "award-1", AuthorID: "author-1", Title: "A", Status: "evaluated", SubmittedAt: now.Add(-3 * time.Hour)})
	module.Store.AddProject(ports.ProjectScan{ProjectID: "project-b", AwardID: "award-1", AuthorID: "author-2", Title: "B", Status: "evaluated", SubmittedAt: now.Add(-2 * time.Hour)})
	module.Store.AddProject(ports.ProjectScan{ProjectID: "project-c", AwardID: "award-1", AuthorID: "author-3", Title: "C", Status: "evaluated", SubmittedAt: now.Add(-1 * time.Hour)})
}

func TestWinnerIsHighestQualifyingMean(t *testing.T) {
	module := newRankingModule(0)
	seedAwardWithProjects(module)
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-a", Score: 7})
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-a", Score: 9})
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-b", Score: 9.5})
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-b", Score: 5.5})
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-c", Score: 5})

	winners, err := module.Handler.ListWinnersHandler(context.Background(), "author-1", "author")
	if err != nil {
		t.Fatalf("list winners failed: %v", err)
	}
	if len(winners.Items) != 1 {
		t.Fatalf("expected exactly one winner, got %d", len(winners.Items))
	}
	winner := winners.Items[0]
	if winner.ProjectID != "project-a" {
		t.Fatalf("expected project-a with mean 8.0 to win, got %s", winner.ProjectID)
	}
	if winner.MeanScore != 8.0 {
		t.Fatalf("expected mean 8.0, got %f", winner.MeanScore)
	}
	if winner.EvaluationCount != 2 {
		t.Fatalf("expected 2 evaluations counted, got %d", winner.EvaluationCount)
	}
}

func TestTieBreaksToEarliestSubmission(t *testing.T) {
	module := newRankingModule(0)
	seedAwardWithProjects(module)
	// project-a and project-b share a mean of 8; project-a was submitted
	// earlier and must win.
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-a", Score: 8})
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-b", Score: 8})

	winner, err := module.Handler.AwardWinnerHandler(context.Background(), "author-1", "author", "award-1")
	if err != nil {
		t.Fatalf("award winner failed: %v", err)
	}
	if winner.ProjectID != "project-a" {
		t.Fatalf("expected earliest submission to win the tie, got %s", winner.ProjectID)
	}
}

func TestAwardsBelowThresholdAreOmitted(t *testing.T) {
	module := newRankingModule(0)
	seedAwardWithProjects(module)
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-a", Score: 5.5})
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-b", Score: 4})

	winners, err := module.Handler.ListWinnersHandler(context.Background(), "author-1", "author")
	if err != nil {
		t.Fatalf("list winners failed: %v", err)
	}
	if len(winners.Items) != 0 {
		t.Fatalf("expected no winners below threshold, got %d", len(winners.Items))
	}
	if _, err := module.Handler.AwardWinnerHandler(context.Background(), "author-1", "author", "award-1"); !errors.Is(err, domainerrors.ErrNoWinner) {
		t.Fatalf("expected no-winner error, got %v", err)
	}
}

func TestThresholdIsConfigurable(t *testing.T) {
	module := newRankingModule(4)
	seedAwardWithProjects(module)
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-a", Score: 5})

	winner, err := module.Handler.AwardWinnerHandler(context.Background(), "author-1", "author", "award-1")
	if err != nil {
		t.Fatalf("award winner failed: %v", err)
	}
	if winner.ProjectID != "project-a" {
		t.Fatalf("expected project-a to qualify under lowered threshold, got %s", winner.ProjectID)
	}
}

func TestRecomputationIsIdempotent(t *testing.T) {
	module := newRankingModule(0)
	seedAwardWithProjects(module)
	module.Store.AddScore(ports.ScoreScan{ProjectID: "project-b", Score: 9})

	first, err := module.Handler.ListWinnersHandler(context.Background(), "evaluator-1", "evaluator")
	if err != nil {
		t.Fatalf("first computation failed: %v", err)
	}
	second, err := module.Handler.ListWinnersHandler(context.Background(), "evaluator-1", "evaluator")
	if err != nil {
		t.Fatalf("second computation failed: %v", err)
	}
	if len(first.Items) != 1 || len(second.Items) != 1 || first.Items[0] != second.Items[0] {
		t.Fatalf("expected identical results across recomputations: %+v vs %+v", first.Items, second.Items)
	}
}

func TestWinnerLookupErrors(t *testing.T) {
	module := newRankingModule(0)
	seedAwardWithProjects(module)

	if _, err := module.Handler.AwardWinnerHandler(context.Background(), "author-1", "author", "award-missing"); !errors.Is(err, domainerrors.ErrAwardNotFound) {
		t.Fatalf("expected award not found, got %v", err)
	}
	if _, err := module.Handler.ListWinnersHandler(context.Background(), "", ""); !errors.Is(err, policyerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for anonymous winners read, got %v", err)
	}
}
