package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vbonduro/citygrid/internal/domain"
)

// userRepository is the subset of store.UserStore that AuthService requires.
type userRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// tokenRepository is the subset of store.TokenStore that AuthService requires.
type tokenRepository interface {
	Create(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	Get(ctx context.Context, token string) (*domain.Token, error)
	Delete(ctx context.Context, token string) error
}

// AuthService issues and checks opaque bearer tokens.
type AuthService struct {
	users  userRepository
	tokens tokenRepository
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthService(users userRepository, tokens tokenRepository, ttl time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func (s *AuthService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %q already exists", domain.ErrInvalidInput, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.Create(ctx, username, string(hash))
}

// Authenticate checks the credentials and returns a new token valid for the
// configured TTL. Unknown users and wrong passwords are indistinguishable.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf("failed to compare password: %w", err)
	}

	token := uuid.NewString()
	if err := s.tokens.Create(ctx, token, user.ID, s.now().Add(s.ttl)); err != nil {
		return "", err
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return token, nil
}

// Validate returns the id of the user the token was issued to. Expired tokens
// are removed.
func (s *AuthService) Validate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: missing token", domain.ErrUnauthorized)
	}

	tok, err := s.tokens.Get(ctx, token)
	if err != nil {
		return 0, err
	}
	if tok == nil {
		return 0, fmt.Errorf("%w: unknown token", domain.ErrUnauthorized)
	}

	if !s.now().Before(tok.ExpiresAt) {
		if err := s.tokens.Delete(ctx, token); err != nil {
			s.logger.Error("failed to delete expired token", "user_id", tok.UserID, "error", err)
		}
		return 0, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
	}

	return tok.UserID, nil
}
