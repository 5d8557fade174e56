package memory

import (
	"context"
	"strings"
	"sync"

	"laureate/contexts/award-program/ranking-engine/ports"
)

// Store is the in-memory ranking source used by tests and local wiring. All
// three projections are seeded by the caller.
type Store struct {
	mu sync.RWMutex

	awards   map[string]ports.AwardScan
	projects []ports.ProjectScan
	scores   []ports.ScoreScan
}

func NewStore() *Store {
	return &Store{
		awards: make(map[string]ports.AwardScan),
	}
}

func (s *Store) SetAward(award ports.AwardScan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awards[strings.TrimSpace(award.AwardID)] = award
}

func (s *Store) AddProject(project ports.ProjectScan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, project)
}

func (s *Store) AddScore(score ports.ScoreScan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, score)
}

func (s *Store) ListAwards(_ context.Context) ([]ports.AwardScan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.AwardScan, 0, len(s.awards))
	for _, award := range s.awards {
		items = append(items, award)
	}
	return items, nil
}

func (s *Store) GetAward(_ context.Context, awardID string) (ports.AwardScan, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	award, ok := s.awards[strings.TrimSpace(awardID)]
	return award, ok, nil
}

func (s *Store) ListEvaluatedProjects(_ context.Context) ([]ports.ProjectScan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.ProjectScan, 0, len(s.projects))
	for _, project := range s.projects {
		if project.Status != "evaluated" {
			continue
		}
		items = append(items, project)
	}
	return items, nil
}

func (s *Store) ListScores(_ context.Context) ([]ports.ScoreScan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.ScoreScan(nil), s.scores...), nil
}
