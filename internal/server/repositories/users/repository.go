// Package users persists registered accounts. The database enforces email
// uniqueness; a concurrent create for the same email loses at the storage
// layer, not in application code.
package users

import (
	"context"

	"github.com/petarea/petarea/internal/server/models"
)

// ProfileUpdate carries the optional fields of a profile update. Empty
// values mean "leave unchanged".
type ProfileUpdate struct {
	Nome  string
	Email string
	Foto  string
}

type Repository interface {
	// Create inserts the user and fills in its id. A duplicate email
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Update applies the non-empty fields of upd and returns the updated
	// user, or common.ErrorNotFound.
	Update(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error)
}
