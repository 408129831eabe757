package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/wizzomafizzo/underwrite/internal/batch"
)

// Exit codes beyond the generic failure let scripts tell input problems apart
const (
	exitFailure      = 1
	exitMissingInput = 3
	exitMalformed    = 4
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := createNewRootCommand().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, batch.ErrMissingInput):
		return exitMissingInput
	case errors.Is(err, batch.ErrMalformedRecord):
		return exitMalformed
	default:
		return exitFailure
	}
}
