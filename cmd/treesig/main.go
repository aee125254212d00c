package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/averlee/treesig/internal/treesig/lib"
)

// Exit statuses. Each reportable failure kind gets its own status so
// callers can distinguish them without parsing the error stream.
const (
	exitFailure      = 1
	exitUsage        = 2
	exitPathNotFound = 3
	exitNotADir      = 4
)

// usageError marks argument-validation failures so they map to their own
// exit status.
type usageError struct{ error }

func main() {
	// An in-flight traversal writes no partial results anywhere, so it is
	// safe to abandon between directory entries on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand()
	rootCmd.AddCommand(NewBlobCommand())
	rootCmd.AddCommand(NewLsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var usage usageError
	switch {
	case errors.As(err, &usage):
		return exitUsage
	case errors.Is(err, lib.ErrPathNotFound):
		return exitPathNotFound
	case errors.Is(err, lib.ErrNotADirectory):
		return exitNotADir
	}
	return exitFailure
}
