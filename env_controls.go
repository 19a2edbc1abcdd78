package main

import (
	"os"
	"strings"
)

func envFlagEnabled(name string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func debugEnabled() bool {
	return envFlagEnabled("GX_DEBUG")
}

func promptsDisabled() bool {
	return envFlagEnabled("GX_NO_INPUT")
}
