package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/notes/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	access, err := svc.IssueAccess(42)
	require.NoError(t, err)

	userID, err := svc.Verify(access, domain.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	refresh, err := svc.IssueRefresh(42)
	require.NoError(t, err)

	userID, err = svc.Verify(refresh, domain.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenService_WrongKind(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	access, err := svc.IssueAccess(1)
	require.NoError(t, err)
	refresh, err := svc.IssueRefresh(1)
	require.NoError(t, err)

	_, err = svc.Verify(access, domain.TokenKindRefresh)
	assert.ErrorIs(t, err, domain.ErrWrongTokenKind)

	_, err = svc.Verify(refresh, domain.TokenKindAccess)
	assert.ErrorIs(t, err, domain.ErrWrongTokenKind)
}

func TestTokenService_WrongSecret(t *testing.T) {
	svc := NewTokenService([]byte("right-secret"))
	other := NewTokenService([]byte("wrong-secret"))

	access, err := svc.IssueAccess(1)
	require.NoError(t, err)

	_, err = other.Verify(access, domain.TokenKindAccess)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	_, err := svc.Verify("not.a.jwt", domain.TokenKindAccess)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewTokenService(secret)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Kind: domain.TokenKindAccess,
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = svc.Verify(expired, domain.TokenKindAccess)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_Lifetimes(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewTokenService(secret)

	access, err := svc.IssueAccess(1)
	require.NoError(t, err)
	refresh, err := svc.IssueRefresh(1)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), expiryOf(t, access, secret), 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(RefreshTokenTTL), expiryOf(t, refresh, secret), 5*time.Second)
}

func expiryOf(t *testing.T, tokenString string, secret []byte) time.Time {
	t.Helper()

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	return claims.ExpiresAt.Time
}
