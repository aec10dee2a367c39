package repomanager

import (
	"context"
	"database/sql"

	"github.com/petarea/petarea/internal/dbx"
	"github.com/petarea/petarea/internal/server/repositories/pets"
	"github.com/petarea/petarea/internal/server/repositories/users"
)

// MemoryRepositoryManager vends in-memory repositories. It ignores the DBTX
// it is handed, so services built on it can run without a database.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	pets  *pets.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		pets:  pets.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Pets(db dbx.DBTX) pets.Repository {
	return m.pets
}
