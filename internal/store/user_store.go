package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/citygrid/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash) VALUES (?, ?)
	`, username, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.get(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.get(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`, username)
}

func (s *UserStore) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	user := &domain.User{}
	err := s.db.GetContext(ctx, user, query, arg)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

type TokenStore struct {
	db *sqlx.DB
}

func NewTokenStore(db *sqlx.DB) *TokenStore {
	return &TokenStore{db: db}
}

func (s *TokenStore) Create(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tokens (token, user_id, expires_at) VALUES (?, ?, ?)
	`, token, userID, expiresAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

func (s *TokenStore) Get(ctx context.Context, token string) (*domain.Token, error) {
	tok := &domain.Token{}
	err := s.db.GetContext(ctx, tok, `
		SELECT token, user_id, expires_at FROM tokens WHERE token = ?
	`, token)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return tok, nil
}

func (s *TokenStore) Delete(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tokens WHERE token = ?`, token); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
