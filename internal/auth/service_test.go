package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RECIPES_BACK-END/internal/store"
	"RECIPES_BACK-END/internal/token"
)

func newService() *Service {
	return NewService(store.NewMemory(), token.New("test-secret", 0))
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	regToken, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, regToken)

	authToken, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)

	claims, err := token.New("test-secret", 0).Validate(authToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegister_DuplicateUser(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	// A different password does not help; the username is taken
	_, err = svc.Register(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc := newService()

	_, err := svc.Authenticate(context.Background(), "nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem, token.New("test-secret", 0))
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	hash, err := mem.GetPassword(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)
}
