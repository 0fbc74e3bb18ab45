package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidID        = errors.New("invalid id")
	ErrBadRequest       = errors.New("bad request")

	// Credential validation errors
	ErrInvalidEmail    = fmt.Errorf("%w: invalid email", ErrValidationFailed)
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", ErrValidationFailed)
)

// Cohort errors
var (
	ErrCohortNotFound      = NewCustomError(ErrResourceNotFound, "Cohort not found")
	ErrCohortAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "A cohort with this slug already exists").WithField("cohortSlug")
)

// Student errors
var (
	ErrStudentNotFound      = NewCustomError(ErrResourceNotFound, "Student not found")
	ErrStudentAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "A student with this email already exists").WithField("email")
)

// User errors
var (
	ErrUserNotFound       = NewCustomError(ErrResourceNotFound, "User not found")
	ErrEmailAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "User already exists.").WithField("email")
)

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewInvalidIDError reports an id that the store cannot parse
func NewInvalidIDError(id string) error {
	return &CustomError{
		Err:     ErrInvalidID,
		Message: "Specified id is not valid",
		Details: map[string]interface{}{"id": id},
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithField names the request field the error refers to
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}
