package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	token, err := Login(path, "alice", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored, ok := Token(path)
	assert.True(t, ok)
	assert.Equal(t, token, stored)
}

func TestLoginRequiresCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	_, err := Login(path, "", "secret")
	require.Error(t, err)
	_, err = Login(path, "alice", "")
	require.Error(t, err)

	_, ok := Token(path)
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	_, err := Login(path, "alice", "secret")
	require.NoError(t, err)

	require.NoError(t, Logout(path))
	_, ok := Token(path)
	assert.False(t, ok)

	// Logging out twice is fine.
	require.NoError(t, Logout(path))
}
