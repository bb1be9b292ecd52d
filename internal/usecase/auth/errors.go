// Package auth implements account registration, login and identity lookup
// on top of the user repository.
package auth

import "errors"

var (
	// ErrForbidden is returned when ALLOWED_USERS is set and the email is not on it.
	ErrForbidden = errors.New("forbidden: email is not allowed")

	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already exists")

	// ErrUserNotFound is returned by Me when the token's subject no longer exists.
	ErrUserNotFound = errors.New("user not found")
)
