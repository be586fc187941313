package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meegsim/labcheck/pkg/datadir"
)

var (
	datadirCreate  bool
	datadirMinFree string
)

var datadirCmd = &cobra.Command{
	Use:   "datadir <path>",
	Short: "Check that the data directory exists and is writable",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatadirCheck,
}

func init() {
	datadirCmd.Flags().BoolVar(&datadirCreate, "create", false, "create the directory if absent")
	datadirCmd.Flags().StringVar(&datadirMinFree, "min-free", "", "minimum free disk space (e.g., 2GB)")
	rootCmd.AddCommand(datadirCmd)
}

func runDatadirCheck(_ *cobra.Command, args []string) error {
	var minFree uint64
	if datadirMinFree != "" {
		var err error
		minFree, err = datadir.ParseSize(datadirMinFree)
		if err != nil {
			return fmt.Errorf("invalid --min-free: %w", err)
		}
	}

	c := &datadir.Check{
		Path:    args[0],
		Create:  datadirCreate,
		MinFree: minFree,
		FS:      &datadir.RealFileSystem{},
	}

	return runCheck(c)
}
