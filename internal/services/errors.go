package services

import "errors"

// Errors returned by collaborator implementations. Handlers map them to HTTP statuses
// with errors.Is, so implementations may wrap them freely.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotImplemented     = errors.New("operation not implemented")
)
