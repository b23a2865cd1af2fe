package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	claims, err := ParseClaims(testSecret, tok.Token)
	require.NoError(t, err)

	uid, ok := UserIDClaim(claims, ClaimSubject)
	require.True(t, ok)
	assert.Equal(t, uint64(42), uid)

	// A session token carries no reset claim.
	_, ok = UserIDClaim(claims, ClaimResetUID)
	assert.False(t, ok)
}

func TestResetTokenRoundTrip(t *testing.T) {
	tok, err := NewResetToken(testSecret, 7, 60)
	require.NoError(t, err)

	claims, err := ParseClaims(testSecret, tok.Token)
	require.NoError(t, err)

	uid, ok := UserIDClaim(claims, ClaimResetUID)
	require.True(t, ok)
	assert.Equal(t, uint64(7), uid)

	// And no subject claim, so it cannot be used as a session token.
	_, ok = UserIDClaim(claims, ClaimSubject)
	assert.False(t, ok)
}

func TestParseClaimsWrongSecret(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, 24)
	require.NoError(t, err)

	_, err = ParseClaims("other-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaimsExpired(t *testing.T) {
	tok, err := NewResetToken(testSecret, 7, -1) // already expired
	require.NoError(t, err)

	_, err = ParseClaims(testSecret, tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaimsMalformed(t *testing.T) {
	_, err := ParseClaims(testSecret, "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseClaims(testSecret, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
