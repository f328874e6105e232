package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdcourse"
	"github.com/alnah/go-mdcourse/internal/config"
	"github.com/alnah/go-mdcourse/internal/hints"
	"github.com/alnah/go-mdcourse/internal/logging"
)

// Exit codes for the mdcourse CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful compilation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or course content
	ExitIO      = 3 // Missing course, index, or unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content and usage errors come first: a parse error also names a file.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, mdcourse.ErrParse) ||
		errors.Is(err, mdcourse.ErrOutline) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrUnknownLevel) {
		return ExitUsage
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdcourse.ErrInvalidRoot) ||
		errors.Is(err, mdcourse.ErrMissingIndex) ||
		errors.Is(err, mdcourse.ErrRead) ||
		errors.Is(err, mdcourse.ErrDebugWrite) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, mdcourse.ErrParse):
		return hints.ForParse()
	case errors.Is(err, mdcourse.ErrMissingIndex):
		return hints.ForMissingIndex()
	case errors.Is(err, mdcourse.ErrInvalidRoot):
		return hints.ForInvalidRoot()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, config.ErrInvalidLevel), errors.Is(err, logging.ErrUnknownLevel):
		return hints.ForLogLevel()
	case errors.Is(err, ErrWriteOutput), errors.Is(err, mdcourse.ErrDebugWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}
