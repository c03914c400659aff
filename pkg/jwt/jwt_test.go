package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", time.Hour, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("4e3cd1a2-0000-0000-0000-000000000001", "alice", "moderator")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "moderator", claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestConfirmationCodeBoundToUsername(t *testing.T) {
	m := newTestManager()

	code, jti, err := m.GenerateConfirmationCode("alice")
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := m.ValidateConfirmationCode(code, "alice")
	require.NoError(t, err)
	assert.Equal(t, jti, claims.ID)

	// A code issued for alice must never validate for bob.
	_, err = m.ValidateConfirmationCode(code, "bob")
	assert.Error(t, err)
}

func TestConfirmationCodeRejectsAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("id", "alice", "user")
	require.NoError(t, err)

	_, err = m.ValidateConfirmationCode(token, "alice")
	assert.Error(t, err)
}

func TestAccessTokenRejectsConfirmationCode(t *testing.T) {
	m := newTestManager()

	code, _, err := m.GenerateConfirmationCode("alice")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(code)
	assert.Error(t, err)
}

func TestExpiredConfirmationCodeFailsClosed(t *testing.T) {
	m := NewManager("test-secret", time.Hour, -time.Minute)

	code, _, err := m.GenerateConfirmationCode("alice")
	require.NoError(t, err)

	_, err = m.ValidateConfirmationCode(code, "alice")
	assert.Error(t, err)
}

func TestTamperedTokenFailsClosed(t *testing.T) {
	m := newTestManager()
	other := NewManager("other-secret", time.Hour, 24*time.Hour)

	code, _, err := other.GenerateConfirmationCode("alice")
	require.NoError(t, err)

	_, err = m.ValidateConfirmationCode(code, "alice")
	assert.Error(t, err)
}
