package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("")

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.Error(t, s.StoreToken(ctx, "  "))
	require.NoError(t, s.StoreToken(ctx, " abc "))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, s.ClearToken(ctx))
	_, err = s.Token(ctx)
	require.ErrorIs(t, err, ErrNoToken)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session", "token")
	s := NewFileStore(path)

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.StoreToken(ctx, "secret-token\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err := NewFileStore(path).Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", token)

	require.NoError(t, s.ClearToken(ctx))
	require.NoError(t, s.ClearToken(ctx))
	_, err = s.Token(ctx)
	require.ErrorIs(t, err, ErrNoToken)
}
