package apperr

import "errors"

// Sentinel errors for the service layer. Services wrap these with
// fmt.Errorf("...: %w", ...) so handlers can classify with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("invalid credentials")
	ErrAuthorization  = errors.New("insufficient permissions")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("conflicting state")
)
