package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// Claims carries the standard registered claims plus the token kind, so a
// refresh token can never pass where an access token is expected.
type Claims struct {
	jwt.RegisteredClaims
	Kind domain.TokenKind `json:"kind"`
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret []byte) ports.TokenService {
	return &TokenService{secret: secret}
}

func (s *TokenService) IssueAccess(userID int64) (string, error) {
	return s.issue(userID, domain.TokenKindAccess, AccessTokenTTL)
}

func (s *TokenService) IssueRefresh(userID int64) (string, error) {
	return s.issue(userID, domain.TokenKindRefresh, RefreshTokenTTL)
}

func (s *TokenService) issue(userID int64, kind domain.TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: kind,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string, kind domain.TokenKind) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, err
		}
		return 0, domain.ErrInvalidToken
	}
	if !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	if claims.Kind != kind {
		return 0, domain.ErrWrongTokenKind
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}

	return userID, nil
}
