package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"laureate/contexts/award-program/project-lifecycle/domain/entities"
	domainerrors "laureate/contexts/award-program/project-lifecycle/domain/errors"
	"laureate/contexts/award-program/project-lifecycle/ports"

	"github.com/google/uuid"
)

// Store is the in-memory project repository used by tests and local wiring.
// Award and account references are projections seeded by the caller so
// submission validation can be exercised without the other modules' stores.
type Store struct {
	mu sync.RWMutex

	projects    map[string]entities.Project
	awards      map[string]ports.AwardRef
	accounts    map[string]ports.AccountRef
	evaluations map[string]string // evaluation id -> project id
}

func NewStore(seed []entities.Project) *Store {
	projects := make(map[string]entities.Project, len(seed))
	for _, project := range seed {
		projects[project.ProjectID] = project
	}
	return &Store{
		projects:    projects,
		awards:      make(map[string]ports.AwardRef),
		accounts:    make(map[string]ports.AccountRef),
		evaluations: make(map[string]string),
	}
}

func (s *Store) SetAwardRef(award ports.AwardRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awards[strings.TrimSpace(award.AwardID)] = award
}

func (s *Store) SetAccountRef(account ports.AccountRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[strings.TrimSpace(account.AccountID)] = account
}

func (s *Store) SetEvaluationRef(evaluationID string, projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations[strings.TrimSpace(evaluationID)] = strings.TrimSpace(projectID)
}

func (s *Store) CreateProject(_ context.Context, project entities.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.projects[project.ProjectID]; exists {
		return domainerrors.ErrConflict
	}
	s.projects[project.ProjectID] = cloneProject(project)
	return nil
}

func (s *Store) UpdateProject(_ context.Context, project entities.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.projects[project.ProjectID]; !exists {
		return domainerrors.ErrProjectNotFound
	}
	s.projects[project.ProjectID] = cloneProject(project)
	return nil
}

func (s *Store) UpdateProjectIfPending(_ context.Context, project entities.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, exists := s.projects[project.ProjectID]
	if !exists {
		return domainerrors.ErrProjectNotFound
	}
	if !stored.Pending() {
		return domainerrors.ErrProjectLocked
	}
	clone := cloneProject(project)
	clone.Status = stored.Status
	s.projects[project.ProjectID] = clone
	return nil
}

func (s *Store) DeleteProject(_ context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	projectID = strings.TrimSpace(projectID)
	if _, exists := s.projects[projectID]; !exists {
		return domainerrors.ErrProjectNotFound
	}
	for evaluationID, owner := range s.evaluations {
		if owner == projectID {
			delete(s.evaluations, evaluationID)
		}
	}
	delete(s.projects, projectID)
	return nil
}

func (s *Store) DeleteProjectIfPending(_ context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	projectID = strings.TrimSpace(projectID)
	stored, exists := s.projects[projectID]
	if !exists {
		return domainerrors.ErrProjectNotFound
	}
	if !stored.Pending() {
		return domainerrors.ErrProjectLocked
	}
	for evaluationID, owner := range s.evaluations {
		if owner == projectID {
			delete(s.evaluations, evaluationID)
		}
	}
	delete(s.projects, projectID)
	return nil
}

func (s *Store) GetProject(_ context.Context, projectID string) (entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[strings.TrimSpace(projectID)]
	if !ok {
		return entities.Project{}, domainerrors.ErrProjectNotFound
	}
	return cloneProject(project), nil
}

func (s *Store) ListProjects(_ context.Context, awardID string) ([]entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	awardID = strings.TrimSpace(awardID)
	items := make([]entities.Project, 0, len(s.projects))
	for _, project := range s.projects {
		if awardID != "" && project.AwardID != awardID {
			continue
		}
		items = append(items, cloneProject(project))
	}
	sortProjects(items)
	return items, nil
}

func (s *Store) ListProjectsByAuthor(_ context.Context, authorID string) ([]entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	authorID = strings.TrimSpace(authorID)
	items := make([]entities.Project, 0, len(s.projects))
	for _, project := range s.projects {
		if project.AuthorID != authorID {
			continue
		}
		items = append(items, cloneProject(project))
	}
	sortProjects(items)
	return items, nil
}

func (s *Store) GetAwardRef(_ context.Context, awardID string) (ports.AwardRef, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	award, ok := s.awards[strings.TrimSpace(awardID)]
	return award, ok, nil
}

func (s *Store) GetAccountRef(_ context.Context, accountID string) (ports.AccountRef, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[strings.TrimSpace(accountID)]
	return account, ok, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortProjects(items []entities.Project) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].SubmittedAt.Equal(items[j].SubmittedAt) {
			return items[i].ProjectID < items[j].ProjectID
		}
		return items[i].SubmittedAt.Before(items[j].SubmittedAt)
	})
}

func cloneProject(project entities.Project) entities.Project {
	clone := project
	clone.CoauthorIDs = append([]string(nil), project.CoauthorIDs...)
	return clone
}
