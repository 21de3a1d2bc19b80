package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Fixture errors
	ErrInvalidFixture = errors.New("invalid fixture")
)

// Student Errors
var (
	ErrStudentNotFound      = NewCustomError(ErrResourceNotFound, "student not found")
	ErrStudentAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "student with this ID already exists")
)

// Class Errors
var (
	ErrClassNotFound      = NewCustomError(ErrResourceNotFound, "class not found")
	ErrClassAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "class with this ID already exists")
)

// Course Errors
var (
	ErrCourseNotFound      = NewCustomError(ErrResourceNotFound, "course not found")
	ErrCourseAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "course with this ID already exists")
)

// Club Errors
var (
	ErrClubNotFound      = NewCustomError(ErrResourceNotFound, "club not found")
	ErrClubAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "club with this ID already exists")
)

// IsNotFound reports whether err is any of the not-found errors
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
