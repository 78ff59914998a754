package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passwordHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func TestService_LoginSuccess(t *testing.T) {
	s := NewService(passwordHash("secret"))

	require.True(t, s.Login("secret"))
	assert.True(t, s.IsAuthenticated())
	assert.NotEmpty(t, s.Token())
	// Токен — hex SHA-256, 64 символа.
	assert.Len(t, s.Token(), 64)
}

func TestService_LoginWrongPassword(t *testing.T) {
	s := NewService(passwordHash("secret"))

	require.False(t, s.Login("wrong"))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestService_FailedLoginKeepsSession(t *testing.T) {
	s := NewService(passwordHash("secret"))

	require.True(t, s.Login("secret"))
	token := s.Token()

	// Неудачная попытка не сбрасывает действующую сессию.
	require.False(t, s.Login("wrong"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, token, s.Token())
}

func TestService_Logout(t *testing.T) {
	s := NewService(passwordHash("secret"))

	require.True(t, s.Login("secret"))
	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}
