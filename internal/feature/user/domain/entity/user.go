// Package entity defines the domain entities for the user feature.
package entity

import (
	"fmt"
	"strings"
	"time"

	"user_backend/internal/feature/user/domain"
)

// Minimum requirements for a valid user record.
const (
	minNameLength = 6
	minAge        = 18
)

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user, assigned by the store
	// on creation and immutable thereafter.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Age is the user's age in years.
	Age int `gorm:"not null"`

	// Roles is the set of roles assigned to the user.
	Roles RoleList `gorm:"type:text;not null"`

	// Password is the hashed password for the user.
	// This never stores plaintext passwords and is never serialized
	// into API responses.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// Validate checks the record's field constraints. The store runs this
// before persisting, so every persisted record satisfies it. Violations
// wrap domain.ErrValidation.
func (u *User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: email must contain '@'", domain.ErrValidation)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if len(u.Name) < minNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", domain.ErrValidation, minNameLength)
	}
	if u.Age < minAge {
		return fmt.Errorf("%w: age must be at least %d", domain.ErrValidation, minAge)
	}
	if len(u.Roles) == 0 {
		return fmt.Errorf("%w: at least one role is required", domain.ErrValidation)
	}
	for _, r := range u.Roles {
		if !r.Valid() {
			return fmt.Errorf("%w: invalid role %q", domain.ErrValidation, string(r))
		}
	}
	if u.Password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	return nil
}
