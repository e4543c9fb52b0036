package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidFilter indicates a malformed filter criterion (bad date, unknown status).
var ErrInvalidFilter = errors.New("invalid filter")

// ErrConflict indicates a concurrent modification; callers may retry after re-reading.
var ErrConflict = errors.New("conflict")

// ErrInvalidState indicates a transition that the current state does not allow.
// It is also reported as ErrConflict.
var ErrInvalidState = fmt.Errorf("invalid state: %w", ErrConflict)

// ErrNotification indicates that an email could not be dispatched.
var ErrNotification = errors.New("notification failed")

// AppError couples an HTTP-ish code and a user-facing message with an underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with an explicit code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns a 404 error carrying a user-facing message.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError returns a 400 validation error.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewInvalidFilterError reports a filter field whose value could not be understood.
func NewInvalidFilterError(field, value string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("invalid value %q for filter %s", value, field),
		Err:     ErrInvalidFilter,
	}
}

// NewConflictError returns a retryable 409 error.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewInvalidStateError reports an action attempted from a state that does not allow it.
func NewInvalidStateError(state, action string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("cannot %s a request that is already %s", action, state),
		Err:     ErrInvalidState,
	}
}

// NewNotificationError wraps a transport failure.
func NewNotificationError(err error) error {
	return fmt.Errorf("%w: %v", ErrNotification, err)
}

// Message returns the user-facing message of err if it is an AppError, else err.Error().
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
