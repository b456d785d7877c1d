package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeyvolkov/notesvc/internal/common"
	"github.com/sergeyvolkov/notesvc/internal/server/auth"
	"github.com/sergeyvolkov/notesvc/internal/server/models"
	"github.com/sergeyvolkov/notesvc/internal/server/passhash"
)

const validPassword = "Sup3r$ecret"

func TestUserService_Register_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeUsersRepo{getErr: common.ErrorNotFound}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	tests := []struct {
		name     string
		username string
		password string
		want     *common.Error
	}{
		{"missing both", "", "", common.ErrMissingCredentials},
		{"missing password", "alice", "", common.ErrMissingCredentials},
		{"missing username", "", validPassword, common.ErrMissingCredentials},
		{"username too short", "ab", validPassword, common.ErrInvalidUsername},
		{"username bad chars", "alice!", validPassword, common.ErrInvalidUsername},
		{"password too weak", "alice", "password", common.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserService_Register_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeUsersRepo{getErr: common.ErrorNotFound}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	user, err := svc.Register(context.Background(), "alice", validPassword)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)

	// stored hash must verify against the original password and nothing else
	ok, err := passhash.VerifyPassword(repo.created.PasswordHash, validPassword)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = passhash.VerifyPassword(repo.created.PasswordHash, "Wr0ng$ecret")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_AlreadyExists(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeUsersRepo{getOut: &models.User{ID: 7, Username: "alice"}}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	_, err := svc.Register(context.Background(), "alice", validPassword)
	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_LostRace(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	// lookup misses but the insert hits the unique constraint
	repo := &fakeUsersRepo{getErr: common.ErrorNotFound, createErr: common.ErrorAlreadyExists}
	svc := NewUserService(db, &fakeRepoManager{users: repo}, testConfig())

	_, err := svc.Register(context.Background(), "alice", validPassword)
	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Login(t *testing.T) {
	hash, err := passhash.HashPassword(validPassword)
	require.NoError(t, err)

	db, _ := newSQLMockDB(t)
	cfg := testConfig()

	t.Run("missing credentials", func(t *testing.T) {
		svc := NewUserService(db, &fakeRepoManager{users: &fakeUsersRepo{}}, cfg)
		_, err := svc.Login(context.Background(), "alice", "")
		assert.ErrorIs(t, err, common.ErrMissingCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := &fakeUsersRepo{getErr: common.ErrorNotFound}
		svc := NewUserService(db, &fakeRepoManager{users: repo}, cfg)
		_, err := svc.Login(context.Background(), "nobody", validPassword)
		assert.ErrorIs(t, err, common.ErrUserDoesNotExist)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeUsersRepo{getOut: &models.User{ID: 42, Username: "alice", PasswordHash: hash}}
		svc := NewUserService(db, &fakeRepoManager{users: repo}, cfg)
		_, err := svc.Login(context.Background(), "alice", "Wr0ng$ecret")
		assert.ErrorIs(t, err, common.ErrIncorrectPassword)
	})

	t.Run("success issues a token for the user", func(t *testing.T) {
		repo := &fakeUsersRepo{getOut: &models.User{ID: 42, Username: "alice", PasswordHash: hash}}
		svc := NewUserService(db, &fakeRepoManager{users: repo}, cfg)

		token, err := svc.Login(context.Background(), "alice", validPassword)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := auth.GetUserIDFromToken(token, []byte(cfg.SecretKey))
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})
}
