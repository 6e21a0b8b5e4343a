package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"team-tracker/internal/errors"
	"team-tracker/internal/logging"
	"team-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		logging.Debugf("%s: %v\n", operation, err)
	}

	if message, ok := eh.userMessage(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, message)
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if message, ok := eh.userMessage(err); ok {
		return fmt.Errorf("%s", message)
	}
	return err
}

// userMessage finds the most specific message for err. Field level
// validation messages win over the wrapping AppError's summary.
func (eh *ErrorHandler) userMessage(err error) (string, bool) {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.GetUserMessage(errors.NewTimeoutError("command")), true
	}

	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage(), true
	}

	if errors.IsAppError(err) {
		return errors.GetUserMessage(err), true
	}
	return "", false
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
