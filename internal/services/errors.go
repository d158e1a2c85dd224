package services

import "errors"

var (
	// ErrUsernameTaken means the username is already registered, whether
	// caught by the pre-insert check or by the store's unique constraint.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so login failures carry no enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound means the targeted row does not exist.
	ErrNotFound = errors.New("not found")
)
