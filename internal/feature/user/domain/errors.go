// Package domain defines domain-level errors for the user feature.
package domain

import "errors"

// Domain errors for user operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	// This is returned during registration when attempting to create a duplicate user.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	// This is returned during login or user lookup operations.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided password does not match.
	// This is returned during login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation indicates a malformed or out-of-range record field.
	// Concrete violations wrap this sentinel with a field-level message.
	ErrValidation = errors.New("validation failed")
)
