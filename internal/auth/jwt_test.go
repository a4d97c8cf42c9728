package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "anonboard", claims.Issuer)
}

func TestManagerHonorsGivenTTL(t *testing.T) {
	m := NewManager("test-secret", time.Minute)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)

	// 传入的 TTL 不会被替换成别的值
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 30*time.Second)
	assert.LessOrEqual(t, remaining, time.Minute)
}

func TestParseExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseMalformedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseWrongKey(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefresh(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	refreshed, err := m.Refresh(token)
	require.NoError(t, err)

	claims, err := m.Parse(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestRefreshExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	_, err = m.Refresh(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
