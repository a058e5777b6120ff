package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/oviedoj/userbase-be/internal/models"
)

// MemoryStore is an in-process UserStore with the same contract as the
// document-database implementation, used by tests and database-less runs.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]models.User)}
}

// Create persists a new user record, enforcing email uniqueness.
func (s *MemoryStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, existing := range s.users {
		if existing.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return user, nil
}

// FindAll returns every user record.
func (s *MemoryStore) FindAll(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

// FindByID returns the user with the given id, or nil if absent.
func (s *MemoryStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or nil if absent.
func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// UpdateByID merges the provided fields into the record and returns the
// post-update copy, or nil if the id is absent.
func (s *MemoryStore) UpdateByID(_ context.Context, id string, update UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	if update.Email != nil {
		email := strings.ToLower(*update.Email)
		for otherID, existing := range s.users {
			if otherID != id && existing.Email == email {
				return nil, ErrDuplicateEmail
			}
		}
		user.Email = email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
	user.UpdatedAt = time.Now().UTC()

	s.users[id] = user
	return &user, nil
}

// DeleteByID removes the record and returns it, or nil if the id is absent.
func (s *MemoryStore) DeleteByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	delete(s.users, id)
	return &user, nil
}
