package model

import (
	"errors"
	"testing"
)

func TestFormError_Error(t *testing.T) {
	err := NewMissingFieldsError()
	want := "[MISSING_FIELDS] All fields are required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFormError_MatchableWithErrorsAs(t *testing.T) {
	var err error = NewDuplicateEmailError()

	var formErr *FormError
	if !errors.As(err, &formErr) {
		t.Fatal("FormError should be matchable with errors.As")
	}
	if formErr.Code != ErrCodeDuplicateEmail {
		t.Errorf("Code = %q, want %q", formErr.Code, ErrCodeDuplicateEmail)
	}
	if formErr.Category != "conflict" {
		t.Errorf("Category = %q, want %q", formErr.Category, "conflict")
	}
}

func TestConstructors_UserFacingMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     *FormError
		message string
	}{
		{"missing fields", NewMissingFieldsError(), "All fields are required"},
		{"invalid email", NewInvalidEmailError(), "Please enter a valid email address"},
		{"weak password", NewWeakPasswordError(), "Password must be at least 6 characters with uppercase, lowercase, and number"},
		{"duplicate email", NewDuplicateEmailError(), "User with this email already exists"},
		{"bad credentials", NewBadCredentialsError(), "Invalid email or password"},
		{"registration failed", NewRegistrationFailedError(), "Registration failed. Please try again."},
		{"login failed", NewLoginFailedError(), "Login failed. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Message != tt.message {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.message)
			}
		})
	}
}
