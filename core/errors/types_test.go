package errors

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "title",
		Message: "must not be empty",
	}

	expected := "validation error on field 'title': must not be empty"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewValidation(t *testing.T) {
	err := NewValidation("episodeUrl", "extension %s does not match MIME type %s", "mp3", "video/mp4")

	if err.Field != "episodeUrl" {
		t.Errorf("Field = %q, want %q", err.Field, "episodeUrl")
	}
	if err.Message != "extension mp3 does not match MIME type video/mp4" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "direct validation error",
			err:      &ValidationError{Field: "language", Message: "bad tag"},
			expected: true,
		},
		{
			name:     "wrapped validation error",
			err:      WrapError(&ValidationError{Field: "guid", Message: "duplicate"}, "episode 2"),
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("something else"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.expected {
				t.Errorf("IsValidation() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("base failure")
	wrapped := WrapError(base, "while rendering")
	if wrapped.Error() != "while rendering: base failure" {
		t.Errorf("wrapped message = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to base")
	}
}
