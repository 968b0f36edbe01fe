package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	a := New("test-secret", 24)

	token, err := a.GenerateToken(7, "a@x.com", "Level01")
	require.NoError(t, err)

	claims, err := a.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.StaffID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Level01", claims.Role)
}

func TestVerifyToken_BearerPrefix(t *testing.T) {
	a := New("test-secret", 24)

	token, err := a.GenerateToken(7, "a@x.com", "Level02")
	require.NoError(t, err)

	claims, err := a.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.StaffID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	a := New("test-secret", 24)
	other := New("another-secret", 24)

	token, err := a.GenerateToken(7, "a@x.com", "Level01")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Missing(t *testing.T) {
	a := New("test-secret", 24)

	_, err := a.VerifyToken("")
	assert.Error(t, err)

	_, err = a.VerifyToken("Bearer ")
	assert.Error(t, err)
}

func TestGenerateToken_MissingInputs(t *testing.T) {
	a := New("test-secret", 24)

	_, err := a.GenerateToken(0, "a@x.com", "Level01")
	assert.Error(t, err)

	_, err = a.GenerateToken(7, "", "Level01")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.NoError(t, VerifyPassword("pw123", hash))
	assert.Error(t, VerifyPassword("wrong", hash))
}
