package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdcourse"
	"github.com/alnah/go-mdcourse/internal/config"
	"github.com/alnah/go-mdcourse/internal/fileutil"
	"github.com/alnah/go-mdcourse/internal/logging"
	"go.uber.org/zap/zapcore"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrNoInput     = errors.New("no input specified")
	ErrWriteOutput = errors.New("failed to write output")
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

const htmlExt = ".html"

// runCompile compiles a course folder and writes the merged document.
func runCompile(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCompileFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.common, env)
	if err != nil {
		return err
	}
	mergeCompileFlags(flags, cfg)

	root, err := resolveInputDir(positional, cfg)
	if err != nil {
		return err
	}

	res, err := compileCourse(ctx, root, cfg, env)
	if err != nil {
		return err
	}

	if !isQuiet(cfg) {
		if !logsInfo(cfg) {
			for _, w := range res.Warnings {
				fmt.Fprintf(env.Stderr, "warning: %s\n", w)
			}
		}
		if res.DebugPath != "" {
			fmt.Fprintf(env.Stderr, "Compiled document kept at: %s\n", res.DebugPath)
		}
	}

	return writeCompiled(ctx, res.Markdown, cfg.Output, env, mdcourse.WithAssetDir(root))
}

// resolveConfig loads the config file named by --config or MDCOURSE_CONFIG,
// then layers environment variables and common flags on top.
func resolveConfig(flags commonFlags, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeCommonFlags(flags, cfg)
	return cfg, nil
}

// mergeCommonFlags merges shared CLI flags into config. CLI values override config values.
func mergeCommonFlags(flags commonFlags, cfg *config.Config) {
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	// -q and -v win over --log-level
	if flags.quiet {
		cfg.Log.Level = config.LevelError
	}
	if flags.verbose {
		cfg.Log.Level = config.LevelDebug
	}
}

// mergeCompileFlags merges compile flags into config. CLI values override config values.
func mergeCompileFlags(flags *compileFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.File = flags.output
	}
	if flags.html {
		cfg.Output.HTML = true
	}
	if flags.keep {
		cfg.Debug.KeepCompiled = true
	}
	if flags.debugDir != "" {
		cfg.Debug.Dir = flags.debugDir
	}
}

// compileCourse runs the compiler over the course at root.
func compileCourse(ctx context.Context, root string, cfg *config.Config, env *Environment) (*mdcourse.Result, error) {
	log, err := logging.New(env.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return mdcourse.NewCompiler(mdcourse.WithLogger(log)).Compile(ctx, mdcourse.Input{
		Root:         root,
		KeepCompiled: cfg.Debug.KeepCompiled,
		DebugDir:     cfg.Debug.Dir,
	})
}

// resolveInputDir determines the course directory from args or config.
func resolveInputDir(args []string, cfg *config.Config) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: expected one course directory, got %d arguments", ErrUsage, len(args))
	case len(args) == 1:
		return args[0], nil
	case cfg.Input.DefaultDir != "":
		return cfg.Input.DefaultDir, nil
	default:
		return "", ErrNoInput
	}
}

// writeCompiled writes md to the configured destination. With HTML enabled
// a file destination gets an .html sibling; stdout gets the HTML instead.
func writeCompiled(ctx context.Context, md string, out config.OutputConfig, env *Environment, opts ...mdcourse.PreviewOption) error {
	if out.File == "" || out.File == stdoutPath {
		doc := md
		if out.HTML {
			var err error
			if doc, err = mdcourse.RenderHTML(ctx, md, opts...); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(env.Stdout, doc); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if err := writeFile(out.File, md); err != nil {
		return err
	}
	if !out.HTML {
		return nil
	}

	doc, err := mdcourse.RenderHTML(ctx, md, opts...)
	if err != nil {
		return err
	}
	htmlPath := fileutil.ReplaceExt(out.File, htmlExt)
	if htmlPath == out.File {
		htmlPath = out.File + htmlExt
	}
	return writeFile(htmlPath, doc)
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 -- course documents are not secret
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}

// logsInfo reports whether the compiler's logger already prints warnings.
func logsInfo(cfg *config.Config) bool {
	lvl, err := logging.ParseLevel(cfg.Log.Level)
	return err == nil && lvl <= zapcore.InfoLevel
}

// isQuiet reports whether only errors should reach stderr.
func isQuiet(cfg *config.Config) bool {
	return strings.EqualFold(cfg.Log.Level, config.LevelError)
}
