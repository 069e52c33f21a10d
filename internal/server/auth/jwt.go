// Package auth issues and decodes signed session tokens. It is pure: no
// storage is consulted, so a token that decodes here may still be revoked.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the registered claims plus the owning user and scope.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Access string `json:"acc"`
}

// Codec signs tokens with HS256 using a process-wide secret.
type Codec struct {
	secretKey        []byte
	validityDuration time.Duration
	now              func() time.Time
}

// NewCodec returns a Codec. validityDuration == 0 issues tokens with no exp
// claim; they stay valid until revoked.
func NewCodec(secretKey []byte, validityDuration time.Duration) *Codec {
	key := make([]byte, len(secretKey))
	copy(key, secretKey)
	return &Codec{secretKey: key, validityDuration: validityDuration, now: time.Now}
}

// Issue returns a signed token binding userID and scope.
func (c *Codec) Issue(userID, scope string) (string, error) {
	now := c.now()

	rc := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if c.validityDuration > 0 {
		rc.ExpiresAt = jwt.NewNumericDate(now.Add(c.validityDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: rc,
		UserID:           userID,
		Access:           scope,
	})

	return token.SignedString(c.secretKey)
}

// Decode verifies token and returns its claims. Errors are one of
// common.ErrSignatureInvalid, common.ErrMalformedToken or
// common.ErrTokenExpired.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, common.ErrSignatureInvalid
		default:
			return nil, common.ErrMalformedToken
		}
	}

	if !token.Valid || claims.UserID == "" || claims.Access == "" {
		return nil, common.ErrMalformedToken
	}

	return claims, nil
}
