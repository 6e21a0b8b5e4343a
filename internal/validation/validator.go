package validation

import (
	"regexp"
	"strings"

	"team-tracker/internal/config"
	"team-tracker/internal/errors"
)

// Validate calls onSuccess when value is one of allowed. Otherwise it
// returns an InvalidValue error listing the allowed values and onSuccess
// is never called.
func Validate(value string, allowed []string, onSuccess func()) error {
	return ValidateField("value", value, allowed, onSuccess)
}

// ValidateField is Validate with the offending field recorded in the
// error context.
func ValidateField(field, value string, allowed []string, onSuccess func()) error {
	for _, candidate := range allowed {
		if candidate == value {
			if onSuccess != nil {
				onSuccess()
			}
			return nil
		}
	}
	return errors.NewInvalidValueError(field, value, allowed)
}

// Validator provides common validation utilities
type Validator struct {
	memberNameRegex *regexp.Regexp
	taskNameRegex   *regexp.Regexp
	config          *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return NewValidatorWithConfig(nil)
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		memberNameRegex: regexp.MustCompile(`^[\p{L}\p{M} .'\-]+$`),
		taskNameRegex:   regexp.MustCompile(`^[\p{L}\p{N} \-_.,!?()/&:]+$`),
		config:          cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len([]rune(strings.TrimSpace(s)))
	return length >= min && length <= max
}

// IsValidNameLength checks a member or task name against the configured limits
func (v *Validator) IsValidNameLength(name string) bool {
	return v.IsValidStringLength(name, v.NameMinLength(), v.NameMaxLength())
}

// IsValidMemberName allows letters, spaces, dots, apostrophes and hyphens.
func (v *Validator) IsValidMemberName(name string) bool {
	return v.memberNameRegex.MatchString(name)
}

// IsValidTaskName rejects control characters and most symbols.
func (v *Validator) IsValidTaskName(name string) bool {
	return v.taskNameRegex.MatchString(name)
}

// IsValidID checks that an id is positive
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// NameMinLength returns the configured minimum name length or the default
func (v *Validator) NameMinLength() int {
	if v.config != nil {
		return v.config.Validation.NameMinLength
	}
	return 1
}

// NameMaxLength returns the configured maximum name length or the default
func (v *Validator) NameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return 100
}
