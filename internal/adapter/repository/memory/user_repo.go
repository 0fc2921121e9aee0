// Package memory holds the development server's mutex-guarded in-memory
// repositories. Everything is scoped by owner: one user never sees
// another user's entities.
package memory

import (
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

// UserRecord pairs a user with their password hash. The hash never
// leaves the repository package boundary except for verification.
type UserRecord struct {
	User         domain.User
	PasswordHash []byte
}

// UserRepository stores registered users keyed by id and email.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]UserRecord
	byEmail map[string]string
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]UserRecord),
		byEmail: make(map[string]string),
	}
}

// Create registers a user. The email must be unused.
func (r *UserRepository) Create(user domain.User, passwordHash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return domain.ErrEmailTaken
	}
	r.byID[user.ID] = UserRecord{User: user, PasswordHash: passwordHash}
	r.byEmail[user.Email] = user.ID
	return nil
}

// ByEmail looks a user up by email.
func (r *UserRepository) ByEmail(email string) (UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return UserRecord{}, domain.ErrNotFound
	}
	return r.byID[id], nil
}

// ByID looks a user up by id.
func (r *UserRepository) ByID(id string) (UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return UserRecord{}, domain.ErrNotFound
	}
	return rec, nil
}
