package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// fetch downloads the full body of a URL.
func fetch(client HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, expected %d", resp.StatusCode, http.StatusOK)
	}

	return io.ReadAll(resp.Body)
}

// writeAtomic writes data next to dest and renames it into place, so an
// interrupted run never leaves a truncated dataset file behind.
func writeAtomic(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	tmp := dest + ".partial"
	if err := os.WriteFile(tmp, data, 0o644); err != nil { //nolint:gosec // dataset files are world-readable
		return err
	}
	return os.Rename(tmp, dest)
}
