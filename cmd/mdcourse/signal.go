package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext cancels the compilation on interrupt or termination.
// Windows never delivers SIGTERM, so there only Ctrl-C applies.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
