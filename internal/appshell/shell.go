package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

// Runner is a command entry point: the name it was invoked as, its
// arguments, and the standard streams. It returns the exit status.
type Runner func(ctx context.Context, prog string, argv []string, stdout, stderr io.Writer) int

// Main runs run with the process arguments and standard streams, cancelling
// its context on SIGINT/SIGTERM, and exits with the status it returns.
//
// SIGPIPE is ignored so a write to a stdout whose reader has gone returns
// EPIPE to run rather than killing the process.
func Main(fallback string, run Runner) {
	signal.Ignore(syscall.SIGPIPE)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var argv []string
	if len(os.Args) > 1 {
		argv = os.Args[1:]
	}
	code := run(ctx, ProgramName(os.Args, fallback), argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}

// ProgramName returns the base name of args[0], or fallback when there is none.
func ProgramName(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}
	switch base := filepath.Base(args[0]); base {
	case "", ".", "/":
		return fallback
	default:
		return base
	}
}
