package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdcourse/internal/config"
)

const envPrefix = "MDCOURSE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDCOURSE_CONFIG: config file name or path
	InputDir   string // MDCOURSE_INPUT_DIR: default course directory
	Output     string // MDCOURSE_OUTPUT: output file
	Debug      *bool  // MDCOURSE_DEBUG: keep the compiled document (1/true/0/false)
	DebugDir   string // MDCOURSE_DEBUG_DIR: directory for the kept document
	LogLevel   string // MDCOURSE_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid MDCOURSE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDCOURSE_CONFIG":    true,
	"MDCOURSE_INPUT_DIR": true,
	"MDCOURSE_OUTPUT":    true,
	"MDCOURSE_DEBUG":     true,
	"MDCOURSE_DEBUG_DIR": true,
	"MDCOURSE_LOG_LEVEL": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDCOURSE_CONFIG"),
		InputDir:   os.Getenv("MDCOURSE_INPUT_DIR"),
		Output:     os.Getenv("MDCOURSE_OUTPUT"),
		DebugDir:   os.Getenv("MDCOURSE_DEBUG_DIR"),
		LogLevel:   os.Getenv("MDCOURSE_LOG_LEVEL"),
	}

	// Unparseable booleans are ignored, not errors
	if debug := os.Getenv("MDCOURSE_DEBUG"); debug != "" {
		if b, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDCOURSE_* variables.
// Helps catch typos like MDCOURSE_OUPUT instead of MDCOURSE_OUTPUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the config file, giving
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeCommonFlags and mergeCompileFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.Output != "" {
		cfg.Output.File = env.Output
	}
	if env.Debug != nil {
		cfg.Debug.KeepCompiled = *env.Debug
	}
	if env.DebugDir != "" {
		cfg.Debug.Dir = env.DebugDir
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
