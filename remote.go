package main

import (
	"github.com/muesli/termenv"

	"github.com/gx-cli/gx/git"
)

// remoteLabel renders the tracking ref, hyperlinked to the remote URL on
// terminals that support OSC 8.
func remoteLabel(root string, t git.Tracking) string {
	ref := t.RemoteRef()
	if !stdoutIsTTY() {
		return ref
	}
	if url := git.RemoteURL(root, t.Remote); url != "" {
		return termenv.Hyperlink(url, ref)
	}
	return ref
}
