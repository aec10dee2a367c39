package pets

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/petarea/petarea/internal/server/models"
)

// MemoryRepository is a mutex-guarded in-memory Repository used by handler
// tests.
type MemoryRepository struct {
	mu   sync.Mutex
	pets []*models.Pet
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *pet
	cp.ID = uuid.NewString()
	r.pets = append(r.pets, &cp)

	out := cp
	return &out, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*models.Pet{}
	for _, p := range r.pets {
		if p.UserID == ownerID {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}
