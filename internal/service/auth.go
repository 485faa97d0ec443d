// Package service provides authentication and catalog business logic,
// delegating persistence to repositories.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdeenkov/shopview/internal/models"
	"github.com/avdeenkov/shopview/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when the username is unknown or the
	// password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("user already exists")
)

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// UserByUsername loads a user by username; repository.ErrUserNotFound
	// when absent.
	UserByUsername(ctx context.Context, username string) (models.User, error)
	// UserExists returns true if a user with the given username exists.
	UserExists(ctx context.Context, username string) (bool, error)
	// CreateUser stores a new user with a hashed password.
	CreateUser(ctx context.Context, id string, form models.RegistrationForm, passwordHash []byte) error
}

// AuthService implements login and registration over an AuthRepository.
type AuthService struct {
	repo AuthRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate verifies the credentials and returns the user together with a
// freshly issued opaque session token. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (models.User, string, error) {
	user, err := s.repo.UserByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	return user, uuid.NewString(), nil
}

// CreateUser registers a new user from the submitted form. The password is
// bcrypt-hashed before it reaches the repository. Returns the new user's id.
func (s *AuthService) CreateUser(ctx context.Context, form models.RegistrationForm) (string, error) {
	exists, err := s.repo.UserExists(ctx, form.Username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := s.repo.CreateUser(ctx, id, form, hash); err != nil {
		return "", err
	}
	return id, nil
}
