package main

import (
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Palette output goes to stdout; keep diagnostics on stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
