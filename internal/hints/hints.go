// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// UserConfigDir locates the per-user config directory. Tests replace it.
var UserConfigDir = os.UserConfigDir

// ForInvalidRoot returns a hint for a course path that is not a directory.
func ForInvalidRoot() string {
	return format("pass the directory that holds the course index.md")
}

// ForMissingIndex returns a hint for a course root without index.md.
func ForMissingIndex() string {
	return format("create index.md at the course root with title, org, course and url_name frontmatter")
}

// ForParse returns a hint for malformed frontmatter.
func ForParse() string {
	return formatHints([]string{
		"frontmatter is a YAML mapping between the opening --- and the next ---",
		"quote values that contain ': ' or start with [ or {",
	})
}

// ForNoInput returns a hint for a missing course directory argument.
func ForNoInput() string {
	return format("pass a course directory, or set MDCOURSE_INPUT_DIR or input.defaultDir")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound() string {
	hint := "use --config /path/to/file.yaml"
	if dir, err := UserConfigDir(); err == nil && dir != "" {
		hint += " or create " + filepath.Join(dir, "go-mdcourse", "<name>.yaml")
	}
	return format(hint)
}

// ForLogLevel returns the accepted log levels.
func ForLogLevel() string {
	return format("levels: " + strings.Join([]string{"debug", "info", "warn", "error"}, ", "))
}

// ForOutputDirectory returns hints for output writing errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
