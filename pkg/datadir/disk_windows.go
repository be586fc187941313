//go:build windows

package datadir

import "errors"

// FreeSpace is not supported on Windows.
func (r *RealFileSystem) FreeSpace(path string) (uint64, error) {
	return 0, errors.New("disk space check not supported on Windows")
}
