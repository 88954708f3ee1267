package models

import "errors"

// ErrNotFound reports that a requested row does not exist. Repositories wrap
// sql.ErrNoRows into it so callers can branch without importing database/sql.
var ErrNotFound = errors.New("not found")

// ValidationError is a local precondition failure. It never reaches the
// store; handlers answer it with a 400 and the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
