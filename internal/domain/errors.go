package domain

import "errors"

// Error kinds raised by the services. Handlers map them to HTTP statuses
// with errors.Is; anything else is treated as an internal error. An entity
// outside the caller's scope reports ErrNotFound, same as an absent one,
// so other users' data is never confirmed to exist.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
