package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"laureate/contexts/identity-access/account-service/domain/entities"
	domainerrors "laureate/contexts/identity-access/account-service/domain/errors"

	"github.com/google/uuid"
)

// Store is the in-memory account repository used by tests and local wiring.
type Store struct {
	mu sync.RWMutex

	accounts map[string]entities.Account
}

func NewStore(seed []entities.Account) *Store {
	accounts := make(map[string]entities.Account, len(seed))
	for _, account := range seed {
		accounts[account.AccountID] = account
	}
	return &Store{accounts: accounts}
}

func (s *Store) CreateAccount(_ context.Context, account entities.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) UpdateAccount(_ context.Context, account entities.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account.AccountID]; !exists {
		return domainerrors.ErrAccountNotFound
	}
	for _, existing := range s.accounts {
		if existing.AccountID != account.AccountID && existing.Email == account.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) DeleteAccount(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	accountID = strings.TrimSpace(accountID)
	if _, exists := s.accounts[accountID]; !exists {
		return domainerrors.ErrAccountNotFound
	}
	delete(s.accounts, accountID)
	return nil
}

func (s *Store) GetAccount(_ context.Context, accountID string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[strings.TrimSpace(accountID)]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return entities.Account{}, domainerrors.ErrAccountNotFound
}

func (s *Store) ListAccounts(_ context.Context, role string) ([]entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		if role != "" && account.Role != role {
			continue
		}
		items = append(items, account)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].AccountID < items[j].AccountID
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
