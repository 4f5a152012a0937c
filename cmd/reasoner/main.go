// Package main is the reasoner command line: an interactive question loop,
// one-shot answers, the demo questions and evaluation suites.
package main

import (
	"log/slog"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
