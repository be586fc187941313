package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meegsim/labcheck/pkg/depcheck"
)

var (
	depConstraint string
	depMatch      string
	depVersionCmd string
	depTimeout    time.Duration
)

var depCmd = &cobra.Command{
	Use:   "dep <name>",
	Short: "Check that a required tool is installed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDepCheck,
}

func init() {
	depCmd.Flags().StringVar(&depConstraint, "constraint", "", `semver range the version must satisfy (e.g., ">= 1.7")`)
	depCmd.Flags().StringVar(&depMatch, "match", "", "regex pattern to match against version output")
	depCmd.Flags().StringVar(&depVersionCmd, "version-cmd", "--version", "command to get version")
	depCmd.Flags().DurationVar(&depTimeout, "timeout", depcheck.DefaultTimeout, "timeout for the version command")
	rootCmd.AddCommand(depCmd)
}

func runDepCheck(_ *cobra.Command, args []string) error {
	c := &depcheck.Check{
		Name:        args[0],
		VersionArgs: strings.Fields(depVersionCmd),
		Constraint:  depConstraint,
		Match:       depMatch,
		Timeout:     depTimeout,
		Runner:      &depcheck.RealRunner{},
	}

	return runCheck(c)
}
