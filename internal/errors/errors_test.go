package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "identity not found",
			},
			want: "identity not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeUnavailable,
				Message: "store unreachable",
				Cause:   errors.New("connection refused"),
			},
			want: "store unreachable: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Unavailable("wrapped error", cause)

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through the AppError")
	}
}

func TestConstructorsAndPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		code      ErrorCode
	}{
		{"missing fields", MissingFields("all fields are required"), IsMissingFields, ErrCodeMissingFields},
		{"invalid credentials", InvalidCredentials("invalid email, password, or role"), IsInvalidCredentials, ErrCodeInvalidCredentials},
		{"unavailable", Unavailable("store down", errors.New("boom")), IsUnavailable, ErrCodeUnavailable},
		{"not found", NotFound("missing"), IsNotFound, ErrCodeNotFound},
		{"conflict", Conflict("duplicate"), IsConflict, ErrCodeConflict},
		{"validation", Validation("bad input"), IsValidation, ErrCodeValidation},
		{"internal", Internal("broken"), IsInternal, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.predicate(tt.err) {
				t.Error("predicate should match its own constructor")
			}
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
			// A wrapped AppError is still recognized.
			wrapped := fmt.Errorf("handler: %w", tt.err)
			if !tt.predicate(wrapped) {
				t.Error("predicate should match through wrapping")
			}
		})
	}
}

func TestPredicatesRejectOtherCodes(t *testing.T) {
	err := InvalidCredentials("nope")
	if IsMissingFields(err) || IsUnavailable(err) || IsNotFound(err) {
		t.Error("predicates must be code-specific")
	}
	if IsInvalidCredentials(errors.New("plain")) {
		t.Error("plain errors carry no code")
	}
}

func TestGetMessage(t *testing.T) {
	if got := GetMessage(InvalidCredentials("uniform message")); got != "uniform message" {
		t.Errorf("GetMessage() = %q", got)
	}
	if got := GetMessage(errors.New("plain")); got != "plain" {
		t.Errorf("GetMessage(plain) = %q", got)
	}
	if got := GetMessage(nil); got != "" {
		t.Errorf("GetMessage(nil) = %q", got)
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "email is required")
	if GetField(err) != "email" {
		t.Errorf("GetField() = %q, want email", GetField(err))
	}
}
