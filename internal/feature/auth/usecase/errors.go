// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotConfirmed is returned when an unconfirmed user tries to log in.
	ErrEmailNotConfirmed = errors.New("email not confirmed")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid,
	// expired, or does not match the stored one.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrInvalidEmailToken is returned when a confirmation token is
	// invalid or expired.
	ErrInvalidEmailToken = errors.New("invalid email confirmation token")

	// ErrEmailAlreadyConfirmed is returned when confirming an email that
	// is already confirmed. Confirmation flips the flag exactly once.
	ErrEmailAlreadyConfirmed = errors.New("email already confirmed")
)
