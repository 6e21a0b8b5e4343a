package validation

import (
	"testing"

	"team-tracker/internal/config"
	"team-tracker/internal/errors"
)

func TestMemberValidator_ValidateName(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.NameMaxLength = 10
	validator := NewMemberValidatorWithConfig(cfg)

	tests := []struct {
		name      string
		input     string
		errorType ValidationErrorType
	}{
		{"Valid", "John Doe", ""},
		{"Empty", "", ErrorTypeRequired},
		{"Too long", "Bartholomew Jones", ErrorTypeInvalidLength},
		{"Digits", "Agent 47", ErrorTypeInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateName(tt.input)
			if tt.errorType == "" {
				if err != nil {
					t.Errorf("ValidateName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}

			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ValidateName(%q) expected ValidationError, got %T", tt.input, err)
			}
			if validationErr.Errors[0].Type != tt.errorType {
				t.Errorf("ValidateName(%q) type = %v, want %v", tt.input, validationErr.Errors[0].Type, tt.errorType)
			}
		})
	}
}

func TestMemberValidator_Choices(t *testing.T) {
	validator := NewMemberValidator()

	if err := validator.ValidateLevel("Senior", []string{"Junior", "Senior"}); err != nil {
		t.Errorf("ValidateLevel() unexpected error: %v", err)
	}

	err := validator.ValidateLevel("Lead", []string{"Junior", "Senior"})
	if !errors.IsInvalidValue(err) {
		t.Fatalf("ValidateLevel() error = %v, want InvalidValue", err)
	}
	appErr, _ := errors.AsAppError(err)
	if field, _ := appErr.GetContext("field"); field != "level" {
		t.Errorf("expected field context 'level', got %v", field)
	}

	if err := validator.ValidateKind("manager", []string{"frontend", "backend"}); !errors.IsInvalidValue(err) {
		t.Errorf("ValidateKind() error = %v, want InvalidValue", err)
	}
}

func TestMemberValidator_IDAndCleanName(t *testing.T) {
	validator := NewMemberValidator()

	if err := validator.ValidateMemberID(0); err == nil {
		t.Error("ValidateMemberID(0) expected error")
	}
	if err := validator.ValidateMemberID(7); err != nil {
		t.Errorf("ValidateMemberID(7) unexpected error: %v", err)
	}

	name, err := validator.GetValidName("  Ann  ")
	if err != nil || name != "Ann" {
		t.Errorf("GetValidName() = %q, %v", name, err)
	}
}
