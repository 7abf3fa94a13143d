package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "task-board-api.com/task-board-api/internal/errors"
)

// Claims is the payload bound into a session token. The role code is a
// snapshot taken at login; privilege decisions re-resolve the live role on
// every request, so a stale claim never grants access on its own.
type Claims struct {
	UserID   uint   `json:"userId"`
	RoleCode string `json:"roleCode"`
	jwt.RegisteredClaims
}

// Service signs and verifies bearer tokens. There is no refresh and no
// revocation list: a token stays cryptographically valid until expiry, and
// deactivated accounts are cut off by the authentication middleware's
// live-status check instead.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

func (s *Service) Issue(userID uint, roleCode string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		RoleCode: roleCode,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.ErrInvalidToken
			}
			return s.secret, nil
		},
	)
	if err != nil || !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
