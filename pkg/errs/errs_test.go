package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	e := New("A secret message")
	got := e.Error()
	want := "A secret message"
	if got != want {
		t.Errorf("Received: %v, Expected: %v", got, want)
	}
}

func TestErr_Error(t *testing.T) {
	e := &Err{
		Code:    "fmt.Print(error)",
		Message: "This is the message",
	}
	got := e.Error()
	want := "fmt.Print(error) : This is the message "
	if got != want {
		t.Errorf("Received: %v, Expected: %v", got, want)
	}
}

func TestErr_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same sentinel", ErrMissingToken, ErrMissingToken, true},
		{"wrapped sentinel", fmt.Errorf("baseline: %w", ErrNoPrevCoverage), ErrNoPrevCoverage, true},
		{"same code different message", ErrMalformedRecord("a.js", "statements.pct"), Err{Code: CodeMalformedRecord}, true},
		{"different code", ErrMissingToken, ErrMissingPRID, false},
		{"plain error", New("boom"), ErrMissingToken, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrMalformedRecord(t *testing.T) {
	got := ErrMalformedRecord("/src/index.js", "statements.pct")
	want := `EMALFORMEDRECORD : coverage record "/src/index.js" has no numeric statements.pct `
	if got.Error() != want {
		t.Errorf("Received: %v, Expected: %v", got, want)
	}
}

func TestErrMissingInput(t *testing.T) {
	got := ErrMissingInput([]string{"repo is required", "owner is required"})
	want := "EMISSINGINPUT : repo is required\nowner is required "
	if got.Error() != want {
		t.Errorf("Received: %v, Expected: %v", got, want)
	}
}
