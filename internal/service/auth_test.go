package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/backend/internal/store"
	"github.com/careerpilot/backend/internal/testdb"
)

func newAuthService(t *testing.T) (*AuthService, *store.Store) {
	t.Helper()
	st := store.New(testdb.Open(t))
	return NewAuthService(st, "test-secret"), st
}

func TestRegisterCreatesTenantWithProfile(t *testing.T) {
	auth, st := newAuthService(t)
	ctx := context.Background()

	token, err := auth.Register(ctx, "Dana", "dana@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", claims.Email)

	// signup provisioned the profile alongside the user
	profile, err := st.Profile(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", profile.Name)
	assert.Equal(t, "dana@example.com", profile.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Dana", "dana@example.com", "password123")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "Other", "dana@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Dana", "dana@example.com", "password123")
	require.NoError(t, err)

	token, err := auth.Login(ctx, "dana@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = auth.Login(ctx, "dana@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email reads the same as a bad password
	_, err = auth.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	token, err := auth.Register(ctx, "Dana", "dana@example.com", "password123")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// token signed with another secret
	otherStore := store.New(testdb.Open(t))
	other := NewAuthService(otherStore, "different-secret")
	foreign, err := other.Register(ctx, "Eve", "eve@example.com", "password123")
	require.NoError(t, err)

	_, err = auth.ValidateToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
