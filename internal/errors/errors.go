package errors

import (
	"errors"
	"fmt"
	"strings"
)

// newAppError builds an error with an empty context map ready for
// WithContext.
func newAppError(errorType ErrorType, code, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    code,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewValidationError wraps the field errors of a rejected input
func NewValidationError(message string, cause error) *AppError {
	return newAppError(ErrorTypeValidation, "VALIDATION_FAILED", message, cause)
}

// NewNotFoundError reports a missing member, task, report or assignee
func NewNotFoundError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeNotFound, "NOT_FOUND", fmt.Sprintf("%s not found: %s", resource, identifier), nil).
		WithContext("resource", resource).
		WithContext("identifier", identifier)
}

// NewDatabaseError wraps a driver failure
func NewDatabaseError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeDatabase, "DATABASE_ERROR", "database operation failed: "+operation, cause).
		WithContext("operation", operation)
}

// NewInvalidInputError reports a malformed command line argument
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, "INVALID_INPUT", fmt.Sprintf("invalid input for %s: %s", field, reason), nil).
		WithContext("field", field).
		WithContext("value", value).
		WithContext("reason", reason)
}

// NewInvalidValueError reports a value outside of its allowed set.
// The message lists the allowed values in order.
func NewInvalidValueError(field string, value string, allowed []string) *AppError {
	message := "Invalid value. Allowed values: " + strings.Join(allowed, ", ")
	return newAppError(ErrorTypeInvalidValue, "INVALID_VALUE", message, nil).
		WithContext("field", field).
		WithContext("value", value).
		WithContext("allowed", allowed)
}

// NewTimeoutError reports an operation that ran past its deadline
func NewTimeoutError(operation string) *AppError {
	return newAppError(ErrorTypeTimeout, "TIMEOUT", "operation timed out: "+operation, nil).
		WithContext("operation", operation)
}

// WrapError gives an arbitrary error a type; the type doubles as the code
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return newAppError(errorType, errorType.String(), message, err)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsInvalidValue reports whether err is, or wraps, an InvalidValue error.
// The whole chain is searched, so a validation error caused by an invalid
// value still matches.
func IsInvalidValue(err error) bool {
	return errors.Is(err, &AppError{Type: ErrorTypeInvalidValue, Code: "INVALID_VALUE"})
}

// GetUserMessage returns the message shown to someone at the terminal.
// System failures are replaced by a generic hint.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	if appErr.Type.UserFacing() {
		return appErr.Message
	}
	switch appErr.Type {
	case ErrorTypeDatabase:
		return "A database error occurred. Please try again."
	case ErrorTypeTimeout:
		return "The operation timed out. Please try again."
	}
	return "An unexpected error occurred. Please try again."
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err is a system failure worth a debug
// line. Plain errors are logged.
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return !appErr.Type.UserFacing()
	}
	return true
}
