package jwtauth

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawtrack/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrInvalidToken = errors.New("invalid or expired token")
)

const DefaultTTL = 24 * time.Hour

// claims embebe los registered claims de JWT; el user id viaja en "sub"
// y el email como claim propio.
type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Service firma y verifica tokens HS256.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

type Config struct {
	SigningKey string
	TTL        time.Duration // <= 0 => DefaultTTL
}

func New(cfg Config) *Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		signingKey: []byte(cfg.SigningKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *Service) Issue(_ context.Context, c auth.Claims) (string, error) {
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: c.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	})

	return token.SignedString(s.signingKey)
}

func (s *Service) Verify(_ context.Context, tokenString string) (auth.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || strings.TrimSpace(c.Subject) == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{UserID: c.Subject, Email: c.Email}, nil
}
