package model

import "errors"

// Sentinel errors shared by the services. The HTTP error handler maps each
// of these to a deterministic status code; anything else becomes a 500.
var (
	// ErrNotFound covers both "record absent" and "record outside the
	// caller's tenant" so that responses never leak existence.
	ErrNotFound = errors.New("record not found")

	// ErrTenantRequired is returned when a write is attempted without a
	// resolved tenant context.
	ErrTenantRequired = errors.New("tenant context required")

	// ErrInvalidCredentials covers both unknown user and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidStatus is returned for a status outside the closed set.
	ErrInvalidStatus = errors.New("invalid application status")

	// ErrInvalidRefreshToken covers expired, revoked and unknown tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// ValidationError carries a field-level message for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
