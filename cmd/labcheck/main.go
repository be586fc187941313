package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "labcheck",
	Short:   "Installation checks for the M/EEG simulation workshop",
	Long:    "Labcheck verifies a workshop environment before the first session: the data directory, the required tools, and the sample dataset.",
	Version: Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
