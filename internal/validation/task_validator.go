package validation

import (
	"strings"

	"team-tracker/internal/config"
)

// TaskValidator provides validation for task operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{validator: NewValidator()}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)
	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if !tv.validator.IsValidNameLength(trimmedName) {
		validationError.AddInvalidLengthError("task_name", trimmedName, tv.validator.NameMinLength(), tv.validator.NameMaxLength())
	}
	if !tv.validator.IsValidTaskName(trimmedName) {
		validationError.AddInvalidCharacterError("task_name", trimmedName)
	}

	return validationError.OrNil()
}

// ValidateTaskForCreation validates the name and free-form dates of a new task.
// Dates are not parsed; they only have to be single-line text.
func (tv *TaskValidator) ValidateTaskForCreation(name, startDate, endDate string) error {
	validationError := NewValidationError()
	validationError.Merge(tv.ValidateTaskName(name))

	if containsLineBreak(startDate) {
		validationError.AddInvalidCharacterError("start_date", startDate)
	}
	if containsLineBreak(endDate) {
		validationError.AddInvalidCharacterError("end_date", endDate)
	}

	return validationError.OrNil()
}

// ValidateDescription validates free text appended to a task
func (tv *TaskValidator) ValidateDescription(description string) error {
	if !tv.validator.IsNonEmptyString(description) {
		validationError := NewValidationError()
		validationError.AddRequiredError("description")
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	return validateID(tv.validator, "task_id", id)
}

// ValidateReportID validates a report ID
func (tv *TaskValidator) ValidateReportID(id int64) error {
	return validateID(tv.validator, "report_id", id)
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}

func validateID(v *Validator, field string, id int64) error {
	if !v.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(field, id, "must be a positive integer")
		return validationError
	}
	return nil
}

func containsLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}
