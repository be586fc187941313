package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meegsim/labcheck/pkg/datadir"
	"github.com/meegsim/labcheck/pkg/dataset"
	"github.com/meegsim/labcheck/pkg/verify"
	"github.com/meegsim/labcheck/pkg/workshopfile"
)

var (
	fetchFile     string
	fetchManifest string
	fetchDir      string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the sample dataset",
	Long:  "Fetch downloads the sample dataset into the data directory. Files already present with a valid checksum are skipped.",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchFile, "file", "", "path to "+workshopfile.DefaultName+" (default: search up from current directory)")
	fetchCmd.Flags().StringVar(&fetchManifest, "manifest", "", "dataset manifest URL (bypasses the workshop file)")
	fetchCmd.Flags().StringVar(&fetchDir, "dir", "", "data directory, required with --manifest")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	if fetchManifest != "" {
		if fetchDir == "" {
			return fmt.Errorf("--dir is required with --manifest")
		}
		dir, err := datadir.ExpandHome(fetchDir)
		if err != nil {
			return fmt.Errorf("cannot resolve --dir: %w", err)
		}
		return runCheck(&dataset.Check{Dir: dir, ManifestURL: fetchManifest})
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := workshopfile.Find(wd, fetchFile)
	if err != nil {
		return err
	}

	wf, err := workshopfile.Load(path)
	if err != nil {
		return err
	}
	if fetchDir != "" {
		wf.DataDir = fetchDir
	}

	c, err := verify.DatasetCheck(wf)
	if err != nil {
		return err
	}
	return runCheck(c)
}
