//go:build unix

package datadir

import "syscall"

// FreeSpace returns free disk space in bytes at the given path.
func (r *RealFileSystem) FreeSpace(path string) (uint64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, err
	}
	// Available blocks * block size
	return stat.Bavail * uint64(stat.Bsize), nil // #nosec G115 -- block size is always positive
}
