package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"laureate/contexts/award-program/award-catalog/domain/entities"
	domainerrors "laureate/contexts/award-program/award-catalog/domain/errors"

	"github.com/google/uuid"
)

// Store is the in-memory award repository used by tests and local wiring.
// Project and evaluation references are projections seeded by the caller so
// cascade deletes can be exercised without the other modules' stores.
type Store struct {
	mu sync.RWMutex

	awards      map[string]entities.Award
	projects    map[string]string // project id -> award id
	evaluations map[string]string // evaluation id -> project id
}

func NewStore(seed []entities.Award) *Store {
	awards := make(map[string]entities.Award, len(seed))
	for _, award := range seed {
		awards[award.AwardID] = award
	}
	return &Store{
		awards:      awards,
		projects:    make(map[string]string),
		evaluations: make(map[string]string),
	}
}

func (s *Store) SetProjectRef(projectID string, awardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[strings.TrimSpace(projectID)] = strings.TrimSpace(awardID)
}

func (s *Store) SetEvaluationRef(evaluationID string, projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations[strings.TrimSpace(evaluationID)] = strings.TrimSpace(projectID)
}

func (s *Store) CreateAward(_ context.Context, award entities.Award) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.awards[award.AwardID]; exists {
		return domainerrors.ErrConflict
	}
	s.awards[award.AwardID] = cloneAward(award)
	return nil
}

func (s *Store) UpdateAward(_ context.Context, award entities.Award) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.awards[award.AwardID]; !exists {
		return domainerrors.ErrAwardNotFound
	}
	s.awards[award.AwardID] = cloneAward(award)
	return nil
}

func (s *Store) DeleteAwardCascade(_ context.Context, awardID string) (entities.CascadeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	awardID = strings.TrimSpace(awardID)
	award, exists := s.awards[awardID]
	if !exists {
		return entities.CascadeResult{}, domainerrors.ErrAwardNotFound
	}

	result := entities.CascadeResult{Stages: len(award.Stages)}
	removedProjects := make(map[string]bool)
	for projectID, owner := range s.projects {
		if owner == awardID {
			removedProjects[projectID] = true
			delete(s.projects, projectID)
			result.Projects++
		}
	}
	for evaluationID, projectID := range s.evaluations {
		if removedProjects[projectID] {
			delete(s.evaluations, evaluationID)
			result.Evaluations++
		}
	}
	delete(s.awards, awardID)
	return result, nil
}

func (s *Store) GetAward(_ context.Context, awardID string) (entities.Award, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	award, ok := s.awards[strings.TrimSpace(awardID)]
	if !ok {
		return entities.Award{}, domainerrors.ErrAwardNotFound
	}
	return cloneAward(award), nil
}

func (s *Store) ListAwards(_ context.Context) ([]entities.Award, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Award, 0, len(s.awards))
	for _, award := range s.awards {
		items = append(items, cloneAward(award))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].AwardID < items[j].AwardID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func cloneAward(award entities.Award) entities.Award {
	clone := award
	clone.Stages = append([]entities.ScheduleStage(nil), award.Stages...)
	return clone
}
