// Package token signs and verifies the bearer credential that carries a
// request identity. Validity equals signature validity: tokens embed an
// issuance timestamp but no expiry, and there is no server-side revocation.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// Codec issues and verifies HS256 credentials with a process-wide secret.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec over the given secret key.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a credential for the given identity.
func (c *Codec) Issue(who domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub": who.ID,
		"adm": who.IsAdmin,
		"iat": time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a credential, returning the embedded identity.
// Any malformed structure, unsupported algorithm, or signature mismatch
// yields domain.ErrInvalidCredentials.
func (c *Codec) Verify(raw string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	adm, _ := claims["adm"].(bool)

	return domain.Identity{ID: sub, IsAdmin: adm}, nil
}
