package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/citygrid/internal/domain"
	"github.com/vbonduro/citygrid/internal/store"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	d := openTestDB(t)
	return NewAuthService(store.NewUserStore(d), store.NewTokenStore(d), time.Hour, discardLogger())
}

func TestAuthServiceAuthenticate(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "operator", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	token, err := svc.Authenticate(ctx, "operator", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthServiceRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "operator", "s3cret")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "operator", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthServiceCreateUserValidation(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, " ", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateUser(ctx, "operator", "pw")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "operator", "other")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthServiceValidate(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.Validate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Validate(ctx, "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.CreateUser(ctx, "operator", "pw")
	require.NoError(t, err)
	token, err := svc.Authenticate(ctx, "operator", "pw")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	svc.now = time.Now
	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "expired token is removed")
}
