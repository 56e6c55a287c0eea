package models

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUsername is returned when a registration hits the unique
	// username index.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidInput wraps all validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials covers both unknown username and wrong password so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
