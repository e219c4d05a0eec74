package utils

import (
	"testing"
	"time"

	"vidtube-go/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager(&config.JWTConfig{
		AccessSecret:  "access-secret",
		AccessExpiry:  "15m",
		RefreshSecret: "refresh-secret",
		RefreshExpiry: "2d",
	}, "vidtube-test")
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Pa$$123word")
	require.NoError(t, err)

	assert.NotEqual(t, "Pa$$123word", hash)
	assert.True(t, VerifyPassword("Pa$$123word", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	token, err := m.GenerateAccessToken(Identity{ID: 42, Username: "alice", Email: "a@example.com", Fullname: "Alice A"})
	require.NoError(t, err)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "Alice A", claims.Fullname)
	assert.Equal(t, "vidtube-test", claims.Issuer)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	m := newTestManager()
	pair, err := m.Issue(Identity{ID: 7})
	require.NoError(t, err)

	_, err = m.ParseAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	m := newTestManager()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.WithClock(func() time.Time { return fixed })

	first, err := m.GenerateRefreshToken(1)
	require.NoError(t, err)
	second, err := m.GenerateRefreshToken(1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExpiredToken(t *testing.T) {
	m := newTestManager()
	issued := time.Now().Add(-time.Hour)
	m.WithClock(func() time.Time { return issued })

	token, err := m.GenerateAccessToken(Identity{ID: 1})
	require.NoError(t, err)

	m.WithClock(time.Now)
	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRejectsUnexpectedSigningMethod(t *testing.T) {
	m := newTestManager()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, AccessClaims{UserID: 1})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.ParseAccessToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `%a.b*%`, ContainsPattern("a.b*"))
	assert.Equal(t, `100\%\_off\\`, EscapeLike(`100%_off\`))
}

func TestEscapeWildcard(t *testing.T) {
	assert.Equal(t, `a.b\*\?\\`, EscapeWildcard(`a.b*?\`))
}
