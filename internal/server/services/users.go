// Package services contains the server-side business logic. UserService
// handles registration and login; NoteService handles note CRUD and the
// filtered, paginated listing.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sergeyvolkov/notesvc/internal/common"
	"github.com/sergeyvolkov/notesvc/internal/dbx"
	"github.com/sergeyvolkov/notesvc/internal/server/auth"
	"github.com/sergeyvolkov/notesvc/internal/server/config"
	"github.com/sergeyvolkov/notesvc/internal/server/models"
	"github.com/sergeyvolkov/notesvc/internal/server/passhash"
	"github.com/sergeyvolkov/notesvc/internal/server/repositories/repomanager"
	"github.com/sergeyvolkov/notesvc/internal/server/validation"
)

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. Checks run in a fixed order and the
// earliest failing check wins: missing fields, username format, password
// format, then existence.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {

	if username == "" || password == "" {
		return nil, common.ErrMissingCredentials
	}
	if !validation.ValidUsername(username) {
		return nil, common.ErrInvalidUsername
	}
	if !validation.ValidPassword(password) {
		return nil, common.ErrInvalidPassword
	}

	hash, err := passhash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: hash}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrUserAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		user, err = repo.Create(ctx, user)
		if errors.Is(err, common.ErrorAlreadyExists) {
			// lost the race to a concurrent registration
			return common.ErrUserAlreadyExists
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the credentials and issues a signed token keyed to the
// matched user id.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {

	if username == "" || password == "" {
		return "", common.ErrMissingCredentials
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserDoesNotExist
		}
		return "", err
	}

	ok, err := passhash.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return "", common.ErrIncorrectPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}
