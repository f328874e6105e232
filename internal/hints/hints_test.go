package hints

// Notes:
// - ForConfigNotFound tests cannot use t.Parallel() because they replace
//   the package-level UserConfigDir variable.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestStaticHints(t *testing.T) {
	tests := []struct {
		name     string
		hint     string
		contains string
	}{
		{"invalid root", ForInvalidRoot(), "index.md"},
		{"missing index", ForMissingIndex(), "url_name"},
		{"parse", ForParse(), "---"},
		{"no input", ForNoInput(), "MDCOURSE_INPUT_DIR"},
		{"log level", ForLogLevel(), "debug, info, warn, error"},
		{"output directory", ForOutputDirectory(), "parent directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.contains) {
				t.Errorf("hint %q should contain %q", tt.hint, tt.contains)
			}
		})
	}
}

func TestForParse_JoinsHints(t *testing.T) {
	hint := ForParse()
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("expected a single hint line, got %q", hint)
	}
	if !strings.Contains(hint, "; ") {
		t.Errorf("expected joined hints, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	orig := UserConfigDir
	defer func() { UserConfigDir = orig }()

	t.Run("with user config dir", func(t *testing.T) {
		UserConfigDir = func() (string, error) { return "/home/u/.config", nil }

		hint := ForConfigNotFound()
		want := filepath.Join("/home/u/.config", "go-mdcourse", "<name>.yaml")
		if !strings.Contains(hint, "--config") || !strings.Contains(hint, want) {
			t.Errorf("hint = %q, want --config and %q", hint, want)
		}
	})

	t.Run("without user config dir", func(t *testing.T) {
		UserConfigDir = func() (string, error) { return "", errors.New("no home") }

		hint := ForConfigNotFound()
		if !strings.Contains(hint, "--config") {
			t.Errorf("hint = %q, want --config suggestion", hint)
		}
		if strings.Contains(hint, "create") {
			t.Errorf("hint = %q, should not suggest a path", hint)
		}
	})
}

func TestFormatHints_Empty(t *testing.T) {
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
