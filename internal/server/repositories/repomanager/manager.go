package repomanager

import (
	"context"
	"database/sql"

	"github.com/petarea/petarea/internal/dbx"
	"github.com/petarea/petarea/internal/server/repositories/pets"
	"github.com/petarea/petarea/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (either the pool or
// a transaction) and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Pets(db dbx.DBTX) pets.Repository
}
