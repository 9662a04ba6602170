package errors

import (
	"net/http"

	"votegate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy carrying details
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		nil,
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Image could not be decoded",
		nil,
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"Phone number is not valid",
		nil,
	)

	// Not found
	ErrVoterNotFound = NewBaseError(
		http.StatusNotFound,
		"VOTER_NOT_FOUND",
		"Voter not found",
		nil,
	)

	ErrCandidateNotFound = NewBaseError(
		http.StatusNotFound,
		"CANDIDATE_NOT_FOUND",
		"Candidate not found",
		nil,
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"Session not found or token invalid",
		nil,
	)

	ErrFaceModelNotFound = NewBaseError(
		http.StatusNotFound,
		"FACE_MODEL_NOT_FOUND",
		"No trained face model for this voter",
		nil,
	)

	ErrOTPNotFound = NewBaseError(
		http.StatusBadRequest,
		"OTP_NOT_FOUND",
		"Invalid or already used code",
		nil,
	)

	// Conflict
	ErrVoterAlreadyExists = NewBaseError(
		http.StatusConflict,
		"VOTER_ALREADY_EXISTS",
		"A voter with this voter ID or national ID is already registered",
		nil,
	)

	ErrAlreadyVoted = NewBaseError(
		http.StatusConflict,
		"ALREADY_VOTED",
		"This voter has already cast a vote",
		nil,
	)

	ErrAlreadyEnrolled = NewBaseError(
		http.StatusConflict,
		"ALREADY_ENROLLED",
		"Face enrollment is closed for this voter",
		nil,
	)

	ErrSessionStepOutOfOrder = NewBaseError(
		http.StatusConflict,
		"SESSION_STEP_OUT_OF_ORDER",
		"Authentication steps must be completed in order",
		nil,
	)

	// Expired
	ErrOTPExpired = NewBaseError(
		http.StatusGone,
		"OTP_EXPIRED",
		"Code has expired",
		nil,
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Session has expired or was closed",
		nil,
	)

	// Detection
	ErrNoFaceDetected = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_FACE_DETECTED",
		"No face detected in the image",
		nil,
	)

	ErrMultipleFacesDetected = NewBaseError(
		http.StatusUnprocessableEntity,
		"MULTIPLE_FACES_DETECTED",
		"More than one face detected in the image",
		nil,
	)

	// Insufficient data
	ErrInsufficientImages = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_IMAGES",
		"Not enough usable face images",
		nil,
	)

	ErrNoTrainingData = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_TRAINING_DATA",
		"No training images stored for this voter",
		nil,
	)

	// Storage
	ErrFaceStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"FACE_STORAGE_FAILED",
		"Face data storage failed",
		nil,
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or malformed session token",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests",
		nil,
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
