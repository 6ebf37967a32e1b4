package storage

import "errors"

var (
	// ErrRegistrationNotFound indicates no registration exists for the
	// requested identity key.
	ErrRegistrationNotFound = errors.New("storage: registration not found")

	// ErrAlreadyRegistered indicates a conditional create lost to an
	// existing registration with the same identity key.
	ErrAlreadyRegistered = errors.New("storage: identity already registered")

	// ErrFlagNotFound indicates the one-shot flag has never been claimed.
	ErrFlagNotFound = errors.New("storage: flag not found")

	// ErrInvalidRegistration indicates a registration record is missing
	// required fields.
	ErrInvalidRegistration = errors.New("storage: invalid registration")
)
