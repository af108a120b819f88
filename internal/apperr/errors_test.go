package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "validation", err: Validation("bad input", nil), want: CodeValidation},
		{name: "wrapped unauthorized", err: fmt.Errorf("login: %w", Unauthorized("Invalid password")), want: CodeUnauthorized},
		{name: "plain error", err: errors.New("boom"), want: CodeInternal},
		{name: "nil", err: nil, want: CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeTransport, "karakeep request failed", cause)

	if got := err.Error(); got != "karakeep request failed: connection refused" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrap should keep the cause reachable through errors.Is")
	}
	if !Is(err, CodeTransport) {
		t.Error("Is() should match the transport code")
	}
}
