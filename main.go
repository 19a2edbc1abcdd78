package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	configureLogging()
	err := run(os.Args)
	switch {
	case err == nil:
	case errors.Is(err, errCancelled):
		fmt.Fprintln(os.Stderr, "cancelled")
	case errors.Is(err, errCancelledPartial):
		fmt.Fprintln(os.Stderr, "cancelled; earlier steps in this flow were already applied")
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "gx error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newRootCommand(args).Execute()
}
