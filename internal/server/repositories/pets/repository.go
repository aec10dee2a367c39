// Package pets persists pet records. Every pet belongs to exactly one user;
// the schema's foreign key guarantees the owner exists at creation time.
package pets

import (
	"context"

	"github.com/petarea/petarea/internal/server/models"
)

type Repository interface {
	// Create inserts the pet (owner already stamped on pet.UserID) and
	// fills in its id.
	Create(ctx context.Context, pet *models.Pet) (*models.Pet, error)
	// ListByOwner returns all pets whose owner is ownerID, in no
	// particular order.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error)
}
