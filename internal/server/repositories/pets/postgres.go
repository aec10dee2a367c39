package pets

import (
	"context"
	"fmt"

	"github.com/petarea/petarea/internal/dbx"
	"github.com/petarea/petarea/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {

	query :=
		`INSERT INTO pets (nome, idade, tipo, foto, servicos_procurados, user_id)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		pet.Nome, pet.Idade, pet.Tipo, pet.Foto, pet.ServicosProcurados, pet.UserID).Scan(&pet.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return pet, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error) {

	query :=
		`SELECT id, nome, idade, tipo, foto, servicos_procurados, user_id FROM pets
		 WHERE user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Pet{}
	for rows.Next() {
		pet := &models.Pet{}
		if err := rows.Scan(&pet.ID, &pet.Nome, &pet.Idade, &pet.Tipo,
			&pet.Foto, &pet.ServicosProcurados, &pet.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
