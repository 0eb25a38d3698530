// Package token issues and verifies the signed bearer tokens that carry the
// acting user's identity. Tokens are stateless: validity is purely a function
// of the signature and the embedded expiry.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cookcal_backend/internal/domain/apperr"
)

// Service signs and verifies access tokens with an HMAC secret.
type Service struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewService builds a token service from the configured secret, algorithm
// identifier and token lifetime. Only the HMAC family is accepted.
func NewService(secret, algorithm string, ttl time.Duration) (*Service, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &Service{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token for the given user with a fixed lifetime.
func (s *Service) Issue(userID uint) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the embedded user id.
// Any failure mode (bad signature, wrong algorithm family, malformed payload,
// missing user_id claim, expiry passed) collapses into ErrUnauthenticated.
func (s *Service) Verify(tokenStr string) (uint, error) {
	parsed, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return 0, apperr.ErrUnauthenticated
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.ErrUnauthenticated
	}
	sub, ok := claims["user_id"].(float64) // JWT numbers decode as float64
	if !ok || sub <= 0 {
		return 0, apperr.ErrUnauthenticated
	}
	return uint(sub), nil
}
