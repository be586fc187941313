package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meegsim/labcheck/pkg/output"
	"github.com/meegsim/labcheck/pkg/verify"
	"github.com/meegsim/labcheck/pkg/workshopfile"
)

var (
	verifyFile    string
	verifyDataDir string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the full workshop installation check",
	Long:  "Verify runs every check from the workshop file in order: data directory, required tools, sample dataset. It stops at the first failure.",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFile, "file", "", "path to "+workshopfile.DefaultName+" (default: search up from current directory)")
	verifyCmd.Flags().StringVar(&verifyDataDir, "data-dir", "", "override the data directory from the workshop file")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := workshopfile.Find(wd, verifyFile)
	if err != nil {
		return err
	}

	wf, err := workshopfile.Load(path)
	if err != nil {
		return err
	}
	if verifyDataDir != "" {
		wf.DataDir = verifyDataDir
	}

	checks, err := verify.FromFile(wf)
	if err != nil {
		return err
	}

	report := verify.Run(checks...)
	output.PrintReport(report)

	if !report.Success {
		return ErrCheckFailed
	}
	return nil
}
