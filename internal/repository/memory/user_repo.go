// Package memory provides in-memory implementations of the repository
// interfaces. They enforce the same uniqueness contract as the Postgres
// backend (index maps checked under the write lock) so services and tests
// observe identical behavior against either store.
package memory

import (
	"context"
	"sync"

	"github.com/lettaaaaa/uklon-service/internal/domain/entities"
	"github.com/lettaaaaa/uklon-service/internal/repository"
)

type UserRepository struct {
	mu         sync.RWMutex
	nextID     int64
	users      map[int64]*entities.User
	byUsername map[string]int64
	byEmail    map[string]int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[int64]*entities.User),
		byUsername: make(map[string]int64),
		byEmail:    make(map[string]int64),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	r.byUsername[user.Username] = user.ID
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byUsername[username]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return r.users[id], nil
}
