package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/newgenpools/site-api/internal/config"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/apperror"
)

// AuthService validates admin credentials against the users table, with the
// configured bootstrap credentials as a fallback when the user row is absent.
type AuthService struct {
	userRepo repository.UserRepository
	admin    *config.AdminConfig
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, admin *config.AdminConfig) *AuthService {
	return &AuthService{userRepo: userRepo, admin: admin}
}

// Authenticate checks a username/password pair and returns the matching
// user. The error is the same for unknown usernames and wrong passwords.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return s.bootstrapLogin(ctx, username, password)
	}
	if !user.ComparePassword(password) {
		return nil, apperror.ErrInvalidCredentials
	}
	return user, nil
}

// bootstrapLogin accepts the configured admin credentials when no matching
// user row exists, creating the row so later logins hit the normal path.
// This covers a database that was wiped or never seeded.
func (s *AuthService) bootstrapLogin(ctx context.Context, username, password string) (*entity.User, error) {
	if s.admin == nil || s.admin.Username == "" || s.admin.Password == "" {
		return nil, apperror.ErrInvalidCredentials
	}
	if username != strings.ToLower(s.admin.Username) {
		return nil, apperror.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) != 1 {
		return nil, apperror.ErrInvalidCredentials
	}

	user := &entity.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
