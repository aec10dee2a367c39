package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/petarea/petarea/internal/common"
	"github.com/petarea/petarea/internal/server/models"
	"github.com/petarea/petarea/internal/server/repositories/repomanager"
)

// PetService manages pet records. Every operation is scoped to an owner id
// that callers must take from the verified token, never from request input.
type PetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPetService(db *sql.DB, m repomanager.RepositoryManager) *PetService {
	return &PetService{db: db, repomanager: m}
}

// Register validates and creates a pet owned by ownerID. Whatever UserID the
// caller put on the record is overwritten.
func (s *PetService) Register(ctx context.Context, ownerID string, pet *models.Pet) (*models.Pet, error) {
	if pet.Nome == "" || pet.Idade == 0 || pet.Tipo == "" {
		return nil, common.ErrorValidation
	}

	pet.UserID = ownerID

	repo := s.repomanager.Pets(s.db)
	p, err := repo.Create(ctx, pet)
	if err != nil {
		return nil, fmt.Errorf("error creating pet: %w", err)
	}
	return p, nil
}

// ListByOwner returns the pets owned by ownerID.
func (s *PetService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error) {
	repo := s.repomanager.Pets(s.db)
	return repo.ListByOwner(ctx, ownerID)
}
