package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
)

// TokenService issues and validates signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewTokenService creates a TokenService signing with secret and issuing
// tokens valid for ttl.
func NewTokenService(secret string, ttl time.Duration, clock clockwork.Clock) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue creates a signed HS256 JWT whose subject is the given user id.
func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry and returns the embedded user id.
// Every failure mode (malformed, bad signature, expired) collapses into
// domain.ErrInvalidToken so callers cannot tell which check failed.
func (s *TokenService) Validate(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return userID, nil
}
