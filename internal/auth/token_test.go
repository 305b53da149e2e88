package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	issued, err := tokens.Issue("admin1")
	require.NoError(t, err)
	require.NotEmpty(t, issued)

	claims, err := tokens.Verify(issued)
	require.NoError(t, err)
	assert.Equal(t, "admin1", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyExpiredToken(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	issued, err := tokens.Issue("admin1")
	require.NoError(t, err)

	_, err = tokens.Verify(issued)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issued, err := NewTokenService("secret-a", time.Hour).Issue("admin1")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Verify(issued)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}
