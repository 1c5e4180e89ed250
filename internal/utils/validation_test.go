package utils

import (
	"strings"
	"testing"
)

type validationSubject struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidateStruct(t *testing.T) {
	valid := validationSubject{Email: "admin@example.com", Password: "Admin@123456"}
	if err := ValidateStruct(valid); err != nil {
		t.Errorf("unexpected error for valid struct: %v", err)
	}

	if err := ValidateStruct(validationSubject{}); err == nil {
		t.Error("expected error for empty struct")
	}
}

func TestFormatValidationError(t *testing.T) {
	tests := []struct {
		name    string
		subject validationSubject
		want    []string
	}{
		{"missing fields", validationSubject{}, []string{"email is required", "password is required"}},
		{"bad email", validationSubject{Email: "not-an-email", Password: "Admin@123456"}, []string{"email must be a valid email"}},
		{"short password", validationSubject{Email: "a@b.com", Password: "short"}, []string{"password must be at least 8 characters"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.subject)
			if err == nil {
				t.Fatal("expected validation error")
			}
			msg := FormatValidationError(err)
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}
