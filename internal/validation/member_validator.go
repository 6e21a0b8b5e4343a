package validation

import "team-tracker/internal/config"

// MemberValidator provides validation for roster operations
type MemberValidator struct {
	validator *Validator
}

// NewMemberValidator creates a new member validator with default limits
func NewMemberValidator() *MemberValidator {
	return &MemberValidator{validator: NewValidator()}
}

// NewMemberValidatorWithConfig creates a member validator using configured limits
func NewMemberValidatorWithConfig(cfg *config.Config) *MemberValidator {
	return &MemberValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateName validates a member name
func (mv *MemberValidator) ValidateName(name string) error {
	validationError := NewValidationError()

	trimmedName := mv.validator.TrimAndValidateString(name)
	if !mv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("name")
		return validationError
	}

	if !mv.validator.IsValidNameLength(trimmedName) {
		validationError.AddInvalidLengthError("name", trimmedName, mv.validator.NameMinLength(), mv.validator.NameMaxLength())
	}
	if !mv.validator.IsValidMemberName(trimmedName) {
		validationError.AddInvalidCharacterError("name", trimmedName)
	}

	return validationError.OrNil()
}

// ValidateLevel checks level against the allowed levels. The result is an
// InvalidValue app error, like any other enumerated value.
func (mv *MemberValidator) ValidateLevel(level string, levels []string) error {
	return ValidateField("level", level, levels, nil)
}

// ValidateKind checks kind against the allowed member kinds.
func (mv *MemberValidator) ValidateKind(kind string, kinds []string) error {
	return ValidateField("kind", kind, kinds, nil)
}

// ValidateMemberID validates a member ID
func (mv *MemberValidator) ValidateMemberID(id int64) error {
	return validateID(mv.validator, "member_id", id)
}

// GetValidName returns a cleaned member name if valid
func (mv *MemberValidator) GetValidName(name string) (string, error) {
	if err := mv.ValidateName(name); err != nil {
		return "", err
	}
	return mv.validator.TrimAndValidateString(name), nil
}
