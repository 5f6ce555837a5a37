// Package jwtmw provides JWT issuance, verification and the Gin middleware
// that gates authenticated routes.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user,
	// valid for ttl from now.
	GenerateToken(userID uint, ttl time.Duration) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret []byte
}

// NewGenerator creates a new JWT generator with the provided secret.
// The secret is fixed for the lifetime of the generator.
func NewGenerator(secret string) Generator {
	return &generator{secret: []byte(secret)}
}

// GenerateToken creates a signed HS256 token with sub, iat and exp claims.
// The TTL is passed per call because registration and login issue tokens
// with different lifetimes.
func (g *generator) GenerateToken(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
