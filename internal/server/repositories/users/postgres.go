package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/petarea/petarea/internal/common"
	"github.com/petarea/petarea/internal/dbx"
	"github.com/petarea/petarea/internal/server/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (nome, sexo, email, celular, data_aniversario, idade, foto, senha_hash)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Nome, user.Sexo, user.Email, user.Celular,
		user.DataAniversario, user.Idade, user.Foto, user.SenhaHash).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, nome, sexo, email, celular, data_aniversario, idade, foto, senha_hash FROM users
		 WHERE email = $1
		 `
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, nome, sexo, email, celular, data_aniversario, idade, foto, senha_hash FROM users
		 WHERE id = $1
		 `
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error) {

	// empty strings fall back to the stored value
	query :=
		`UPDATE users SET
		    nome  = COALESCE(NULLIF($2, ''), nome),
		    email = COALESCE(NULLIF($3, ''), email),
		    foto  = COALESCE(NULLIF($4, ''), foto)
		 WHERE id = $1
		 RETURNING id, nome, sexo, email, celular, data_aniversario, idade, foto, senha_hash
		 `
	return r.scanUser(r.db.QueryRowContext(ctx, query, id, upd.Nome, upd.Email, upd.Foto))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Nome, &user.Sexo, &user.Email, &user.Celular,
		&user.DataAniversario, &user.Idade, &user.Foto, &user.SenhaHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
