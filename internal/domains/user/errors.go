package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user already exists with this email")
)

// Service-level errors
var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password. Callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
