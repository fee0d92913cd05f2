package memory

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, other := range r.store.users {
		if id == u.ID || other.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	c := *u
	r.store.users[u.ID] = &c
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if u, ok := r.store.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}
