package datadir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/meegsim/labcheck/pkg/check"
)

// probeName is the throwaway file written to prove the directory is writable.
const probeName = ".labcheck-write-probe"

// Check verifies that the workshop data directory exists and is usable.
// With Create set, a missing directory is created (parents included),
// matching the behavior participants expect when they point the check at
// a fresh location like ~/meeg_data.
type Check struct {
	Path    string     // directory to check, may start with ~
	Create  bool       // create the directory if absent
	MinFree uint64     // minimum free disk space in bytes (0 = no check)
	FS      FileSystem // injected for testing
}

// Run executes the data directory check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("datadir: %s", c.Path),
	}

	path, err := ExpandHome(c.Path)
	if err != nil {
		return result.Failf(check.KindFilesystem, "cannot resolve path: %v", err)
	}
	if path != c.Path {
		result.AddDetailf("resolved: %s", path)
	}

	info, err := c.FS.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return result.Fail(check.KindFilesystem, "not a directory",
				fmt.Errorf("%s exists but is not a directory", path))
		}
	case os.IsNotExist(err):
		if !c.Create {
			return result.Fail(check.KindFilesystem, "not found", err)
		}
		if err := c.FS.MkdirAll(path, 0o755); err != nil {
			return result.Failf(check.KindFilesystem, "cannot create directory: %v", err)
		}
		result.AddDetail("created")
	case os.IsPermission(err):
		return result.Fail(check.KindFilesystem, "permission denied", err)
	default:
		return result.Failf(check.KindFilesystem, "stat failed: %v", err)
	}

	// Mode bits alone lie on read-only mounts, so prove writability
	// with a probe file.
	probe := filepath.Join(path, probeName)
	if err := c.FS.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		return result.Failf(check.KindFilesystem, "not writable: %v", err)
	}
	_ = c.FS.Remove(probe)
	result.AddDetail("writable")

	if c.MinFree > 0 {
		free, err := c.FS.FreeSpace(path)
		if err != nil {
			return result.Failf(check.KindFilesystem, "failed to check disk space: %v", err)
		}

		result.AddDetailf("disk free: %s", FormatSize(free))

		if free < c.MinFree {
			return result.Failf(check.KindFilesystem, "disk space %s < required %s",
				FormatSize(free), FormatSize(c.MinFree))
		}
	}

	result.Status = check.StatusOK
	return result
}
