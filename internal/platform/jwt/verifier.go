package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure modes, checked in order: a token that is not three
// well-formed segments is malformed; a well-formed token with a bad MAC has
// an invalid signature; only a structurally valid, correctly signed token
// can be expired. A tampered-but-stale token is therefore reported as
// ErrSignatureInvalid, never ErrTokenExpired.
var (
	// ErrTokenMalformed is returned when the token is not a parsable JWT.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrSignatureInvalid is returned when the signature does not verify
	// against the process secret, or the signing method is not HMAC.
	ErrSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when a correctly signed token is past
	// its exp claim.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the verified payload of a token.
type Claims struct {
	// UserID is the subject identity the token was issued for.
	UserID uint

	// IssuedAt is the iat claim.
	IssuedAt time.Time

	// ExpiresAt is the exp claim.
	ExpiresAt time.Time
}

// Verifier defines the interface for JWT token verification.
type Verifier interface {
	// VerifyToken checks the token's structure, signature and expiry and
	// returns its claims. Failures are one of ErrTokenMalformed,
	// ErrSignatureInvalid or ErrTokenExpired; any other error is an
	// internal fault.
	VerifyToken(tokenStr string) (*Claims, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new JWT verifier with the provided secret.
func NewVerifier(secret string) Verifier {
	return &verifier{secret: []byte(secret)}
}

// VerifyToken parses and validates the token. Verification is a pure
// function of the token string, the secret and the clock; it performs no
// I/O and is safe for concurrent use.
func (v *verifier) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; alg confusion (e.g. "none") is a
		// signature failure.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrSignatureInvalid):
			return nil, ErrSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, fmt.Errorf("failed to verify token: %w", err)
		}
	}
	if !token.Valid {
		return nil, ErrSignatureInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}
	sub, ok := mapClaims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrTokenMalformed
	}

	claims := &Claims{UserID: uint(sub)}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return claims, nil
}
