// Package logging builds the logr.Logger handed to the compiler by the CLI.
// The backend is zap with a console encoder, bridged through zapr.
//
// logr verbosity maps onto zap levels: V(0) is info and V(1) is debug,
// so "warn" hides compiler notices and keeps only errors and warnings
// logged by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned for a level outside debug, info, warn and error.
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel maps a level name to its zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%w %q (expected debug, info, warn, or error)", ErrUnknownLevel, level)
	}
}

// New returns a logger writing human-readable lines to w.
func New(w io.Writer, level string) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Logger{}, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	if lvl > zapcore.DebugLevel {
		encCfg.CallerKey = ""
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)

	var opts []zap.Option
	if lvl == zapcore.DebugLevel {
		opts = append(opts, zap.AddCaller())
	}
	return zapr.NewLogger(zap.New(core, opts...)), nil
}
