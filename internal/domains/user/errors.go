package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")

	// Conflict
	ErrUsernameTaken = errors.New("this username is taken by another user")
	ErrEmailTaken    = errors.New("this email is used with a different username")
)

// Service-level errors
var (
	ErrInvalidConfirmationCode = errors.New("invalid or expired confirmation code")
	ErrInvalidRole             = errors.New("invalid user role")
)
