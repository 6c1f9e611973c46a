package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("user-1", "a@example.com", time.Minute)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "a@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestRefreshTokenTyping(t *testing.T) {
	refresh, err := GenerateRefreshToken("user-1")
	require.NoError(t, err)

	sub, err := ExtractRefreshSubject(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	// An access token must not pass as a refresh token, and vice versa the
	// refresh token still resolves through the generic path.
	access, err := GenerateToken("user-1", "a@example.com", time.Minute)
	require.NoError(t, err)
	_, err = ExtractRefreshSubject(access)
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
