package domain

import "errors"

// Client-correctable validation failures.
var (
	ErrMissingCredentials = errors.New("login and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidField       = errors.New("field value out of range")
)

// ErrLoginTaken signals a duplicate normalized login. Enforced by a
// unique index at the store, not a check-then-insert.
var ErrLoginTaken = errors.New("login already taken")

// ErrInvalidCredentials is returned for both an unknown login and a
// wrong password. The message must stay identical for the two cases so
// clients cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid login or password")

// ErrUserNotFound is internal to the credential store; the auth
// service maps it to ErrInvalidCredentials before it reaches a client.
var ErrUserNotFound = errors.New("user not found")

// Token verification failures.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)
