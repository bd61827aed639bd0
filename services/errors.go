package services

import "errors"

// ValidationError marks a request that failed shape or content validation;
// its message is the first failing rule, surfaced verbatim to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ErrInvalidCredentials is returned on login whether the identity is unknown
// or the password is wrong, preventing user enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")
