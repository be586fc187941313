package datadir

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meegsim/labcheck/pkg/check"
	"github.com/meegsim/labcheck/pkg/testutil"
)

type mockFileSystem struct {
	StatFunc      func(name string) (fs.FileInfo, error)
	MkdirAllFunc  func(path string, perm fs.FileMode) error
	WriteFileFunc func(name string, data []byte, perm fs.FileMode) error
	RemoveFunc    func(name string) error
	FreeSpaceFunc func(path string) (uint64, error)
}

func (m *mockFileSystem) Stat(name string) (fs.FileInfo, error) { return m.StatFunc(name) }

func (m *mockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path, perm)
	}
	return nil
}

func (m *mockFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(name, data, perm)
	}
	return nil
}

func (m *mockFileSystem) Remove(name string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
	}
	return nil
}

func (m *mockFileSystem) FreeSpace(path string) (uint64, error) {
	if m.FreeSpaceFunc != nil {
		return m.FreeSpaceFunc(path)
	}
	return 100 * GB, nil
}

type mockFileInfo struct {
	NameValue  string
	ModeValue  fs.FileMode
	IsDirValue bool
}

func (m *mockFileInfo) Name() string       { return m.NameValue }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.ModeValue }
func (m *mockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m *mockFileInfo) Sys() any           { return nil }
func (m *mockFileInfo) ModTime() time.Time { return time.Unix(0, 0) }

func statDir() func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) {
		return &mockFileInfo{NameValue: "d", ModeValue: 0o755 | fs.ModeDir, IsDirValue: true}, nil
	}
}

func statFile() func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) {
		return &mockFileInfo{NameValue: "f", ModeValue: 0o644}, nil
	}
}

func statErr(err error) func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) { return nil, err }
}

func TestCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
		wantKind   check.Kind
		wantDetail string
	}{
		{
			"existing directory",
			Check{Path: "/data", FS: &mockFileSystem{StatFunc: statDir()}},
			check.StatusOK, "", "writable",
		},
		{
			"path is a regular file",
			Check{Path: "/data", FS: &mockFileSystem{StatFunc: statFile()}},
			check.StatusFail, check.KindFilesystem, "not a directory",
		},
		{
			"missing without create",
			Check{Path: "/data", FS: &mockFileSystem{StatFunc: statErr(os.ErrNotExist)}},
			check.StatusFail, check.KindFilesystem, "not found",
		},
		{
			"permission denied on stat",
			Check{Path: "/data", FS: &mockFileSystem{StatFunc: statErr(os.ErrPermission)}},
			check.StatusFail, check.KindFilesystem, "permission denied",
		},
		{
			"generic stat error",
			Check{Path: "/data", FS: &mockFileSystem{StatFunc: statErr(errors.New("I/O error"))}},
			check.StatusFail, check.KindFilesystem, "stat failed: I/O error",
		},
		{
			"created when missing",
			Check{Path: "/data", Create: true, FS: &mockFileSystem{StatFunc: statErr(os.ErrNotExist)}},
			check.StatusOK, "", "created",
		},
		{
			"creation fails",
			Check{Path: "/data", Create: true, FS: &mockFileSystem{
				StatFunc:     statErr(os.ErrNotExist),
				MkdirAllFunc: func(string, fs.FileMode) error { return os.ErrPermission },
			}},
			check.StatusFail, check.KindFilesystem, "cannot create directory",
		},
		{
			"write probe fails",
			Check{Path: "/data", FS: &mockFileSystem{
				StatFunc:      statDir(),
				WriteFileFunc: func(string, []byte, fs.FileMode) error { return errors.New("read-only file system") },
			}},
			check.StatusFail, check.KindFilesystem, "not writable",
		},
		{
			"enough disk space",
			Check{Path: "/data", MinFree: 2 * GB, FS: &mockFileSystem{
				StatFunc:      statDir(),
				FreeSpaceFunc: func(string) (uint64, error) { return 10 * GB, nil },
			}},
			check.StatusOK, "", "disk free: 10.0GB",
		},
		{
			"not enough disk space",
			Check{Path: "/data", MinFree: 10 * GB, FS: &mockFileSystem{
				StatFunc:      statDir(),
				FreeSpaceFunc: func(string) (uint64, error) { return 1 * GB, nil },
			}},
			check.StatusFail, check.KindFilesystem, "disk space 1.0GB < required 10.0GB",
		},
		{
			"disk space probe error",
			Check{Path: "/data", MinFree: 1, FS: &mockFileSystem{
				StatFunc:      statDir(),
				FreeSpaceFunc: func(string) (uint64, error) { return 0, errors.New("statfs failed") },
			}},
			check.StatusFail, check.KindFilesystem, "failed to check disk space",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantKind, result.Kind)
			if tt.wantDetail != "" {
				assert.True(t, testutil.ContainsDetail(result.Details, tt.wantDetail),
					"details %v should contain %q", result.Details, tt.wantDetail)
			}
		})
	}
}

func TestCheck_RunRemovesProbe(t *testing.T) {
	var removed string
	mfs := &mockFileSystem{
		StatFunc:   statDir(),
		RemoveFunc: func(name string) error { removed = name; return nil },
	}

	c := &Check{Path: "/data", FS: mfs}
	result := c.Run()

	require.Equal(t, check.StatusOK, result.Status)
	assert.Equal(t, "/data/"+probeName, removed)
}

func TestCheck_RunCreateIsIdempotent(t *testing.T) {
	// Second run sees the directory that the first run created.
	dir := t.TempDir() + "/meeg_data"
	c := &Check{Path: dir, Create: true, FS: &RealFileSystem{}}

	first := c.Run()
	require.Equal(t, check.StatusOK, first.Status)
	assert.True(t, testutil.ContainsDetail(first.Details, "created"))

	second := c.Run()
	require.Equal(t, check.StatusOK, second.Status)
	assert.False(t, testutil.ContainsDetail(second.Details, "created"))
}
