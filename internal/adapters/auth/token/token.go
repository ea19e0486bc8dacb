package token

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"petmate/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("token: secret not configured")
	ErrInvalidToken  = errors.New("token: invalid token")
)

const (
	issuerName = "petmate"
	defaultTTL = 7 * 24 * time.Hour
)

// Source firma y verifica tokens de sesión HS256 con un secreto local.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Source struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string) *Source {
	return &Source{
		secret: []byte(strings.TrimSpace(secret)),
		ttl:    defaultTTL,
		now:    time.Now,
	}
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

func (s *Source) Issue(ctx context.Context, username string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNotConfigured
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrInvalidToken
	}

	now := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Source) Verify(ctx context.Context, tokenStr string) (auth.Claims, error) {
	if len(s.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || strings.TrimSpace(claims.Subject) == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{Username: claims.Subject}, nil
}
