package model

import "errors"

var (
	// ErrNotFound is returned when an id-keyed lookup or mutation target is absent.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when a signup collides with an existing email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidInput is returned when malformed arguments reach the core.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable wraps transient store failures; callers may retry with backoff.
	ErrUnavailable = errors.New("store unavailable")
)
