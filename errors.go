package mdcourse

import "errors"

// Sentinel errors for compilation. Returned errors wrap one of these
// together with the offending path, so callers use errors.Is.
var (
	ErrInvalidRoot  = errors.New("course root is not a directory")
	ErrMissingIndex = errors.New("course index.md not found")
	ErrParse        = errors.New("failed to parse frontmatter")
	ErrRead         = errors.New("failed to read course source")
	ErrDebugWrite   = errors.New("failed to keep compiled document")

	// Downstream reading errors.
	ErrOutline = errors.New("invalid course document")
)
