// Package password provides bcrypt hashing and verification of user credentials.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies plaintext passwords.
type Hasher interface {
	// Hash produces a salted one-way hash of the plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored hash.
	// A mismatch is a normal false result, never an error.
	Verify(plaintext, hash string) bool
}

// bcryptHasher implements Hasher using bcrypt.
// The salt is generated per call and embedded in the output, so no
// separate salt storage is needed.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a Hasher with the given work factor.
// Costs outside bcrypt's supported range fall back to the default (10).
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt hash of the plaintext.
// It fails only on internal bcrypt errors (e.g. entropy source unavailable).
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify recomputes the hash and compares. bcrypt's comparison does not
// short-circuit on the first mismatching byte.
func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// DummyHash is a valid bcrypt hash of a random string. Login flows compare
// against it when no user record exists, so the response time does not
// reveal whether an email is registered.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
