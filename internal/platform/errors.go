package platform

import (
	"errors"
)

var (
	// ErrAuthentication is returned when request credential is missing or invalid.
	ErrAuthentication = errors.New("authentication failed")
	// ErrValidation is returned when request or filter is malformed.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when referenced entity doesn't exist or doesn't belong to caller's brand.
	ErrNotFound = errors.New("not found")
)
