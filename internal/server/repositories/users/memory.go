package users

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/petarea/petarea/internal/common"
	"github.com/petarea/petarea/internal/server/models"
)

// MemoryRepository is a mutex-guarded in-memory Repository. It mirrors the
// uniqueness guarantee of the Postgres schema and backs handler tests.
type MemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: map[string]*models.User{}}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	cp := *user
	cp.ID = uuid.NewString()
	r.users[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Nome != "" {
		u.Nome = upd.Nome
	}
	if upd.Email != "" {
		u.Email = upd.Email
	}
	if upd.Foto != "" {
		u.Foto = upd.Foto
	}
	out := *u
	return &out, nil
}
