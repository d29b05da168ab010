package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/pkg/errs"
)

// DefaultTokenTTL is how long issued tokens stay valid unless configured otherwise.
const DefaultTokenTTL = 8 * time.Hour

// Claims is the JWT payload carried by issued tokens.
// The subject holds the user's UUID.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService implements TokenIssuer using HMAC-signed JWTs.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a token service signing with the given secret.
// A non-positive ttl falls back to DefaultTokenTTL.
func NewJWTService(secret string, ttl time.Duration) (JWTService, error) {
	if secret == "" {
		return JWTService{}, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue signs a token for the given user identity.
func (s JWTService) Issue(userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates the token, returning the user identity it was
// issued for. Expired tokens fail with an error wrapping jwt.ErrTokenExpired
// so the transport layer can distinguish them from other rejections.
func (s JWTService) Verify(tokenString string) (kernel.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return kernel.UUID{}, errors.New("invalid token claims")
	}

	return kernel.UUIDFromString(claims.Subject)
}
