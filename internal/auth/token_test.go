package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("secret-key", time.Hour)

	token, err := issuer.Issue("acc1", "a@x.com")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "acc1", claims.AccountID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestTokenExpired(t *testing.T) {
	// A negative lifetime issues an already-expired token.
	issuer := NewTokenIssuer("secret-key", -time.Minute)

	token, err := issuer.Issue("acc1", "a@x.com")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongKey(t *testing.T) {
	issuer := NewTokenIssuer("secret-key", time.Hour)
	other := NewTokenIssuer("another-key", time.Hour)

	token, err := issuer.Issue("acc1", "a@x.com")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestTokenMalformed(t *testing.T) {
	issuer := NewTokenIssuer("secret-key", time.Hour)

	_, err := issuer.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
