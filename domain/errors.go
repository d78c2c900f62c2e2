package domain

import "errors"

// Sentinel errors separating the client-facing failure modes. Delivery maps
// them with errors.Is; anything else is a 500.
var (
	ErrVolunteerNotFound  = errors.New("volunteer not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrValidation         = errors.New("invalid volunteer data")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
