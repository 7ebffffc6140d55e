package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalstreet/postrack/internal/models"
	"github.com/globalstreet/postrack/internal/server/storage"
)

func testAccount(id, username string) *models.Account {
	return &models.Account{
		ID:           id,
		Username:     username,
		PasswordHash: "$2a$10$fakehashfortesting",
		Role:         models.RoleCollector,
		CreatedAt:    time.Now(),
	}
}

func TestCreateAccount(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("a1", "collector1")))

	got, err := s.GetAccountByUsername(ctx, "collector1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, models.RoleCollector, got.Role)
	assert.Nil(t, got.LastLogin)
}

func TestCreateAccount_DuplicateUsername(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("a1", "collector1")))

	err := s.CreateAccount(ctx, testAccount("a2", "collector1"))
	assert.ErrorIs(t, err, storage.ErrAccountAlreadyExists)
}

func TestGetAccountByID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("a1", "collector1")))

	got, err := s.GetAccountByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "collector1", got.Username)

	_, err = s.GetAccountByID(ctx, "nope")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}

func TestUpdateLastLogin(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, testAccount("a1", "collector1")))

	loginTime := time.Now()
	require.NoError(t, s.UpdateLastLogin(ctx, "a1", loginTime))

	got, err := s.GetAccountByUsername(ctx, "collector1")
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, loginTime, *got.LastLogin, time.Second)
}

func TestUpdateLastLogin_UnknownAccount(t *testing.T) {
	s := newTestStorage(t)

	err := s.UpdateLastLogin(context.Background(), "nope", time.Now())
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}
