// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login (issuing JWTs), and profile
// maintenance for the authenticated user.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/petarea/petarea/internal/common"
	"github.com/petarea/petarea/internal/dbx"
	"github.com/petarea/petarea/internal/server/auth"
	"github.com/petarea/petarea/internal/server/config"
	"github.com/petarea/petarea/internal/server/models"
	"github.com/petarea/petarea/internal/server/repositories/repomanager"
	"github.com/petarea/petarea/internal/server/repositories/users"
)

// UserService provides authentication-related operations:
// - Register: create accounts (hashing the password first)
// - Login: verify credentials and mint a token
// - Area / UpdateProfile / SetPhoto: operations on the authenticated account
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the required fields, hashes the password, and creates
// the user. A taken email yields common.ErrorAlreadyExists; validation
// problems yield common.ErrorValidation. Nothing touches the store before
// validation passes.
func (s *UserService) Register(ctx context.Context, user *models.User, senha string) (*models.User, error) {
	if user.Nome == "" || user.Sexo == "" || user.Email == "" || user.Celular == "" ||
		user.DataAniversario == "" || user.Idade == 0 || senha == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(senha)
	if err != nil {
		return nil, common.ErrorInternal
	}
	user.SenhaHash = hash

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the email/password pair and, on success, returns a signed
// token carrying the user id. Unknown email and wrong password are both
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, senha string) (string, error) {
	if email == "" || senha == "" {
		return "", common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(senha, user.SenhaHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Get returns the user by id.
func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, userID)
}

// UpdateProfile applies the non-empty fields of upd to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd users.ProfileUpdate) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.Update(ctx, userID, upd)
}

// SetPhoto stores the asset reference on the user's profile. The existence
// check and the write run in one transaction.
func (s *UserService) SetPhoto(ctx context.Context, userID string, foto string) (*models.User, error) {
	var updated *models.User
	err := s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if _, err := repo.GetByID(ctx, userID); err != nil {
			return err
		}
		u, err := repo.Update(ctx, userID, users.ProfileUpdate{Foto: foto})
		if err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// inTx runs fn inside a transaction when a database is configured; the
// in-memory repositories ignore the handle entirely.
func (s *UserService) inTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}
