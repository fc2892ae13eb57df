package entity

import "errors"

// Domain errors
var (
	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Generation pipeline errors
	ErrGenerationFailure         = errors.New("generation failure")
	ErrMalformedGenerationOutput = errors.New("malformed generation output")
	ErrPersistenceFailure        = errors.New("persistence failure")

	// Interview errors
	ErrInterviewNotFound = errors.New("interview not found")

	// Account errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidSession     = errors.New("invalid session")
)

// IsValidation reports whether err is caused by client input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidParameter)
}
