package service

import (
	"context"
	"testing"

	"github.com/newgenpools/site-api/internal/config"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestAuthenticateKnownUser(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "hunter2hunter2")
	svc := NewAuthService(repo, &config.AdminConfig{})

	user, err := svc.Authenticate(context.Background(), "  Admin ", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "hunter2hunter2")
	svc := NewAuthService(repo, &config.AdminConfig{})

	_, err := svc.Authenticate(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthenticateUnknownUserSameError(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &config.AdminConfig{})

	_, err := svc.Authenticate(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthenticateEmptyCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &config.AdminConfig{})

	_, err := svc.Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestBootstrapLoginCreatesUserRow(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &config.AdminConfig{Username: "Admin", Password: "s3cret-s3cret"})

	user, err := svc.Authenticate(context.Background(), "admin", "s3cret-s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	// The row is persisted, so the next login takes the normal path.
	stored, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.ComparePassword("s3cret-s3cret"))
}

func TestBootstrapLoginRejectsWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &config.AdminConfig{Username: "admin", Password: "s3cret-s3cret"})

	_, err := svc.Authenticate(context.Background(), "admin", "nope")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestBootstrapLoginSkippedOnceUserExists(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "db-password-1")
	svc := NewAuthService(repo, &config.AdminConfig{Username: "admin", Password: "env-password-1"})

	// The database row wins over the env credentials.
	_, err := svc.Authenticate(context.Background(), "admin", "env-password-1")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	user, err := svc.Authenticate(context.Background(), "admin", "db-password-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}
