package errors

import (
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: 0,
		},
		{
			name: "classified validation error",
			err: NewError(CategoryValidation, "invalid input").
				WithSeverity(SeverityError).
				Build(),
			expected: 2,
		},
		{
			name:     "model error",
			err:      ModelError("class has no name").Build(),
			expected: 2,
		},
		{
			name:     "config error",
			err:      ConfigError("bad rule table").Build(),
			expected: 7,
		},
		{
			name:     "filesystem error",
			err:      FileSystemError("cannot read model file").Build(),
			expected: 11,
		},
		{
			name:     "render error",
			err:      RenderError("rendering failed").Build(),
			expected: 12,
		},
		{
			name:     "internal error",
			err:      InternalError("missing switch case").Build(),
			expected: 10,
		},
		{
			name:     "unclassified error",
			err:      &customError{msg: "unknown error"},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "nil error",
			err:      nil,
			contains: "",
		},
		{
			name: "internal error hides detail in non-verbose mode",
			err: NewError(CategoryInternal, "internal issue").
				WithSeverity(SeverityError).
				Build(),
			contains: "Internal error occurred (use -v for details)",
		},
		{
			name:     "config error shows message",
			err:      ConfigError("bad rule table").Build(),
			contains: "bad rule table",
		},
		{
			name:     "unclassified error",
			err:      &customError{msg: "unknown error"},
			contains: "Error: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.FormatError(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("FormatError() = %q, want empty string", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("FormatError() = %q, want to contain %q", got, tt.contains)
			}
		})
	}
}

func TestCLIErrorAdapter_VerboseFormat(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, slog.Default())

	err := InternalError("missing switch case").Build()
	got := adapter.FormatError(err)
	if !strings.Contains(got, "missing switch case") {
		t.Errorf("FormatError() in verbose mode = %q, want full detail", got)
	}
}

// customError is a test helper for unclassified errors
type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
