package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"RECIPES_BACK-END/internal/store"
	"RECIPES_BACK-END/internal/token"
)

var (
	// ErrDuplicateUser is returned when registering a username that already exists
	ErrDuplicateUser = errors.New("username already exists")
	// ErrInvalidCredentials is returned when username or password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles user registration and authentication on top of the
// credential store and the token service.
type Service struct {
	creds  store.CredentialStore
	tokens *token.Service
}

// NewService creates a new auth service instance
func NewService(creds store.CredentialStore, tokens *token.Service) *Service {
	return &Service{creds: creds, tokens: tokens}
}

// Register creates a credential record for a new user and returns an access
// token. Fails with ErrDuplicateUser if the username is taken.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	exists, err := s.creds.UserExists(ctx, username)
	if err != nil {
		return "", fmt.Errorf("auth: check user: %w", err)
	}
	if exists {
		return "", ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}

	if err := s.creds.SetPassword(ctx, username, string(hashed)); err != nil {
		return "", fmt.Errorf("auth: store credentials: %w", err)
	}

	return s.tokens.Issue(username)
}

// Authenticate verifies a username/password pair and returns an access token.
// Unknown users and wrong passwords both fail with ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	hashed, err := s.creds.GetPassword(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth: get credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(username)
}
