package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	logLevel string
	quiet    bool
	verbose  bool
}

// compileFlags holds all flags for the compile command.
type compileFlags struct {
	common   commonFlags
	output   string
	html     bool
	keep     bool
	debugDir string
}

// outlineFlags holds all flags for the outline command.
type outlineFlags struct {
	common commonFlags
	format string
}

// Outline output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show skipped folders and debug logs")
}

// newCompileFlagSet registers the compile flags on a new FlagSet.
// Parsing and shell completion share it.
func newCompileFlagSet(f *compileFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output file (\"-\" or empty = stdout)")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview")
	fs.BoolVar(&f.keep, "keep", false, "keep the compiled document in a mdcourse-*.md file")
	fs.StringVar(&f.debugDir, "debug-dir", "", "directory for --keep (default: system temp)")
	addCommonFlags(fs, &f.common)
	return fs
}

// newOutlineFlagSet registers the outline flags on a new FlagSet.
func newOutlineFlagSet(f *outlineFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("outline", flag.ContinueOnError)
	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, yaml")
	addCommonFlags(fs, &f.common)
	return fs
}

// parseCompileFlags parses compile command flags and returns positional args.
func parseCompileFlags(args []string, stderr io.Writer) (*compileFlags, []string, error) {
	f := &compileFlags{}
	fs := newCompileFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printCompileUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if err := f.common.validate(); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseOutlineFlags parses outline command flags and returns positional args.
func parseOutlineFlags(args []string, stderr io.Writer) (*outlineFlags, []string, error) {
	f := &outlineFlags{}
	fs := newOutlineFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printOutlineUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if err := f.common.validate(); err != nil {
		return nil, nil, err
	}
	switch f.format {
	case formatText, formatYAML:
	default:
		return nil, nil, fmt.Errorf("%w: --format must be text or yaml, got %q", ErrUsage, f.format)
	}
	return f, fs.Args(), nil
}

// parseFlagSet parses args, tagging failures as usage errors.
// flag.ErrHelp is returned unwrapped so callers can exit cleanly.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

func (f commonFlags) validate() error {
	if f.quiet && f.verbose {
		return fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	return nil
}
