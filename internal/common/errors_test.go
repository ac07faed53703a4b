package common

import (
	"errors"
	"testing"
)

func TestUserErrorWrapping(t *testing.T) {
	err := NewUserError("could not read config", ErrInvalidConfig)

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("wrapped sentinel should be reachable through errors.Is")
	}

	var ue *UserError
	if !errors.As(err, &ue) {
		t.Fatal("expected a *UserError")
	}
	if ue.UserMessage != "could not read config" {
		t.Errorf("user message = %q", ue.UserMessage)
	}
}

func TestMissingFieldError(t *testing.T) {
	err := MissingFieldError("material name")

	if !errors.Is(err, ErrMissingField) {
		t.Error("expected ErrMissingField sentinel")
	}
	want := `please fill in "material name": missing required field`
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing field", MissingFieldError("x"), true},
		{"invalid number", NewUserError("amount must be a number", ErrInvalidNumber), true},
		{"not found", ErrNotFound, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.want {
				t.Errorf("IsValidation = %v, want %v", got, tt.want)
			}
		})
	}
}
