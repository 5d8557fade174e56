package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"laureate/contexts/award-program/evaluation-ledger/domain/entities"
	domainerrors "laureate/contexts/award-program/evaluation-ledger/domain/errors"
	"laureate/contexts/award-program/evaluation-ledger/ports"

	"github.com/google/uuid"
)

// Store is the in-memory evaluation repository used by tests and local
// wiring. Project references are projections seeded by the caller; the store
// flips their status itself so the composite write can be exercised without
// the lifecycle module's store.
type Store struct {
	mu sync.Mutex

	evaluations map[string]entities.Evaluation
	projects    map[string]ports.ProjectRef
}

func NewStore(seed []entities.Evaluation) *Store {
	evaluations := make(map[string]entities.Evaluation, len(seed))
	for _, evaluation := range seed {
		evaluations[evaluation.EvaluationID] = evaluation
	}
	return &Store{
		evaluations: evaluations,
		projects:    make(map[string]ports.ProjectRef),
	}
}

func (s *Store) SetProjectRef(project ports.ProjectRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[strings.TrimSpace(project.ProjectID)] = project
}

// ProjectStatus reports the current status of a seeded project reference.
func (s *Store) ProjectStatus(projectID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects[strings.TrimSpace(projectID)].Status
}

// CreateEvaluationAndMarkEvaluated holds the store lock across the duplicate
// check, the insert, and the status flip, mirroring the single transaction of
// the postgres adapter.
func (s *Store) CreateEvaluationAndMarkEvaluated(_ context.Context, evaluation entities.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.evaluations[evaluation.EvaluationID]; exists {
		return domainerrors.ErrConflict
	}
	for _, existing := range s.evaluations {
		if existing.ProjectID == evaluation.ProjectID && existing.EvaluatorID == evaluation.EvaluatorID {
			return domainerrors.ErrAlreadyEvaluated
		}
	}
	s.evaluations[evaluation.EvaluationID] = evaluation
	if project, ok := s.projects[evaluation.ProjectID]; ok && project.Status == "pending" {
		project.Status = "evaluated"
		s.projects[evaluation.ProjectID] = project
	}
	return nil
}

func (s *Store) UpdateEvaluation(_ context.Context, evaluation entities.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.evaluations[evaluation.EvaluationID]; !exists {
		return domainerrors.ErrEvaluationNotFound
	}
	s.evaluations[evaluation.EvaluationID] = evaluation
	return nil
}

func (s *Store) DeleteEvaluation(_ context.Context, evaluationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	evaluationID = strings.TrimSpace(evaluationID)
	if _, exists := s.evaluations[evaluationID]; !exists {
		return domainerrors.ErrEvaluationNotFound
	}
	delete(s.evaluations, evaluationID)
	return nil
}

func (s *Store) GetEvaluation(_ context.Context, evaluationID string) (entities.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	evaluation, ok := s.evaluations[strings.TrimSpace(evaluationID)]
	if !ok {
		return entities.Evaluation{}, domainerrors.ErrEvaluationNotFound
	}
	return evaluation, nil
}

func (s *Store) ListEvaluations(_ context.Context) ([]entities.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entities.Evaluation, 0, len(s.evaluations))
	for _, evaluation := range s.evaluations {
		items = append(items, evaluation)
	}
	sortEvaluations(items)
	return items, nil
}

func (s *Store) ListByEvaluator(_ context.Context, evaluatorID string) ([]entities.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	evaluatorID = strings.TrimSpace(evaluatorID)
	items := make([]entities.Evaluation, 0, len(s.evaluations))
	for _, evaluation := range s.evaluations {
		if evaluation.EvaluatorID != evaluatorID {
			continue
		}
		items = append(items, evaluation)
	}
	sortEvaluations(items)
	return items, nil
}

func (s *Store) GetProjectRef(_ context.Context, projectID string) (ports.ProjectRef, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[strings.TrimSpace(projectID)]
	return project, ok, nil
}

func (s *Store) ListPendingProjects(_ context.Context) ([]ports.ProjectRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]ports.ProjectRef, 0, len(s.projects))
	for _, project := range s.projects {
		if project.Status != "pending" {
			continue
		}
		items = append(items, project)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].SubmittedAt.Equal(items[j].SubmittedAt) {
			return items[i].ProjectID < items[j].ProjectID
		}
		return items[i].SubmittedAt.Before(items[j].SubmittedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortEvaluations(items []entities.Evaluation) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].EvaluationID < items[j].EvaluationID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
