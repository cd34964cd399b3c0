package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	errLocked := errors.New("database is locked")
	RegisterHint(errLocked, "close other dayjournal windows and retry")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("entry for 2024-02-30 not saved"), "Error: entry for 2024-02-30 not saved"},
		{"wrapped", fmt.Errorf("load journal: %w", errors.New("disk full")), "Error: load journal: disk full"},
		{
			"with hint",
			fmt.Errorf("save entry: %w", errLocked),
			"Error: save entry: database is locked\nHint: close other dayjournal windows and retry",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHintFirstMatchWins(t *testing.T) {
	base := errors.New("unreachable")
	RegisterHint(base, "first")
	RegisterHint(base, "second")

	if got := Hint(fmt.Errorf("ping: %w", base)); got != "first" {
		t.Errorf("Hint() = %q, want first", got)
	}
	if got := Hint(errors.New("unrelated")); got != "" {
		t.Errorf("Hint() for unregistered error = %q, want empty", got)
	}
	if got := Hint(nil); got != "" {
		t.Errorf("Hint(nil) = %q, want empty", got)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	if code := Report(&buf, nil); code != 0 || buf.Len() != 0 {
		t.Errorf("Report(nil) = %d with output %q, want 0 and nothing", code, buf.String())
	}

	if code := Report(&buf, errors.New("journal unavailable")); code != 1 {
		t.Errorf("Report() = %d, want 1", code)
	}
	if got := buf.String(); got != "Error: journal unavailable\n" {
		t.Errorf("Report() wrote %q", got)
	}
}
