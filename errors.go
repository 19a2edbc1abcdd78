package main

import "errors"

// Cancellation unwinds to run() instead of exiting mid-flow. A pure
// cancellation exits 0; cancelling after some steps of a batch have already
// mutated the repository exits 1.
var errCancelled = errors.New("cancelled")
var errCancelledPartial = errors.New("cancelled after partial changes")

var errNoTerminal = errors.New("interactive input required but stdin is not a terminal")
