// Package appshell hosts the process entry point: signal-driven
// cancellation and exit-code normalization around an app RunContext
// function.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs the app with a context that is cancelled on SIGINT/SIGTERM.
// An interrupted run that would otherwise report success exits 130, so a
// partially written output is never mistaken for a complete one.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
