package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrEmailExists is returned when creating an identity with an email
	// that is already registered (case-insensitive).
	ErrEmailExists = errors.New("email already registered")
)
