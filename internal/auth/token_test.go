package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	token, expires, err := tokens.Issue("user-1")
	require.NoError(t, err)
	assert.True(t, expires.After(time.Now()))

	actor, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", actor.UserID)
}

func TestTokens_Verify_WrongSecret(t *testing.T) {
	token, _, err := NewTokens("secret", time.Hour).Issue("user-1")
	require.NoError(t, err)

	_, err = NewTokens("other", time.Hour).Verify(token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokens_Verify_Expired(t *testing.T) {
	tokens := NewTokens("secret", time.Minute)
	tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := tokens.Issue("user-1")
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Minute).Verify(token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokens_Verify_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Hour).Verify(token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokens_Verify_Garbage(t *testing.T) {
	_, err := NewTokens("secret", time.Hour).Verify("not-a-token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
