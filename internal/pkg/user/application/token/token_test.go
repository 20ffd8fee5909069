package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("top-secret", time.Hour)

	raw, err := issuer.Issue("user-1", "DRIVER")
	require.NoError(t, err)

	claims, err := issuer.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "DRIVER", claims.Role)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("top-secret", -time.Minute)

	raw, err := issuer.Issue("user-1", "PASSENGER")
	require.NoError(t, err)

	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	raw, err := NewIssuer("secret-a", time.Hour).Issue("user-1", "PASSENGER")
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewIssuer("top-secret", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
